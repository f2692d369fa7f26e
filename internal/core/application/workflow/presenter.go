package workflow

// Presenter receives everything the presentation layer renders. Both methods are
// called with the controller lock held and must not dispatch intents back.
type Presenter interface {
	Render(snapshot Snapshot)
	Notify(notification Notification)
}

// PresenterFunc adapts two plain functions to Presenter; nil members are skipped.
type PresenterFunc struct {
	OnRender func(Snapshot)
	OnNotify func(Notification)
}

func (p PresenterFunc) Render(s Snapshot) {
	if p.OnRender != nil {
		p.OnRender(s)
	}
}

func (p PresenterFunc) Notify(n Notification) {
	if p.OnNotify != nil {
		p.OnNotify(n)
	}
}
