package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"droneflow/internal/core/domain/model/order"
	"droneflow/internal/core/domain/model/payment"
	"droneflow/internal/core/domain/model/pricing"
	"droneflow/internal/core/domain/model/tracking"
	"droneflow/internal/core/domain/model/wallet"
	"droneflow/internal/core/ports"
	"droneflow/internal/pkg/errs"
)

var (
	ErrWorkflowClosed = errors.New("workflow is closed")
	// ErrWorkflowBusy is returned by startNewOrder while a settlement is still pending.
	ErrWorkflowBusy = errors.New("workflow is busy settling the current order")
	// ErrDraftFrozen is returned by draft edits once the payment left Idle.
	ErrDraftFrozen = errors.New("draft is frozen by a confirmed payment")
	// ErrNoTracker is returned by advanceTracking before the first hand-off.
	ErrNoTracker = fmt.Errorf("%w: %w", errs.ErrObjectNotFound, errors.New("no delivery is being tracked"))
)

// Controller is the only entry point of the presentation layer. It owns the draft,
// the price summary, the wallet session, the payment and the tracker, and applies
// intents to them one at a time.
//
// Every mutation bumps the snapshot version and is rendered through the
// Presenter. Rejections are turned into notifications and also returned from
// Dispatch so synchronous callers can branch on them with errors.Is.
//
//	controller, err := workflow.NewController(cfg, detector, scheduler, clock, presenter, logger)
//	if err != nil {
//	    return err
//	}
//	defer controller.Close()
//
//	snapshot, err := controller.Dispatch(ctx, workflow.NewApplyPromoIntent("welcome"))
//	if errors.Is(err, pricing.ErrInvalidPromoCode) {
//	    // a rejection notice was already emitted
//	}
type Controller struct {
	mu sync.Mutex

	cfg       Config
	promo     pricing.PromoEngine
	detector  ports.ProviderDetector
	scheduler ports.Scheduler
	clock     ports.Clock
	presenter Presenter
	logger    *slog.Logger

	// lifetime is cancelled by Close and aborts outstanding provider requests.
	lifetime context.Context
	cancel   context.CancelFunc
	closed   bool

	version    uint64
	step       order.Step
	draft      *order.Draft
	price      pricing.PriceSummary
	session    *wallet.Session
	tx         *payment.Transaction
	settlement *settlement
	tracker    *tracking.Tracker
}

// NewController validates cfg and renders the initial snapshot.
func NewController(
	cfg Config,
	detector ports.ProviderDetector,
	scheduler ports.Scheduler,
	clock ports.Clock,
	presenter Presenter,
	logger *slog.Logger,
) (*Controller, error) {
	if err := errors.Join(
		cfg.Validate(),
		required("detector", detector),
		required("scheduler", scheduler),
		required("clock", clock),
		required("presenter", presenter),
	); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	lifetime, cancel := context.WithCancel(context.Background())
	c := &Controller{
		cfg:       cfg,
		promo:     pricing.NewPromoEngine(cfg.PromoRules...),
		detector:  detector,
		scheduler: scheduler,
		clock:     clock,
		presenter: presenter,
		logger:    logger.With("component", "workflow_controller"),
		lifetime:  lifetime,
		cancel:    cancel,
		session:   wallet.NewSession(),
	}
	c.resetOrder()

	c.mu.Lock()
	c.publish()
	c.mu.Unlock()

	return c, nil
}

// Start restores a wallet session the installed provider already authorized.
// Nothing is notified; an absent or failing provider only gets logged.
func (c *Controller) Start(ctx context.Context) error {
	provider, ok := c.detector.Detect(ctx)
	if !ok {
		c.logger.DebugContext(ctx, "No wallet provider installed, skipping session restore")
		return nil
	}

	accounts, err := provider.RequestAccounts(ctx)
	if err != nil {
		c.logger.WarnContext(ctx, "Wallet session restore failed", "provider", provider.Kind(), "error", err)
		return nil
	}
	if len(accounts) == 0 {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrWorkflowClosed
	}
	if c.session.Status() != wallet.Disconnected {
		return nil
	}
	if err = c.session.Restore(provider.Kind(), accounts, c.cfg.MockBalance); err != nil {
		c.logger.WarnContext(ctx, "Wallet session restore rejected", "error", err)
		return nil
	}

	c.logger.InfoContext(ctx, "Wallet session restored", "provider", provider.Kind(), "address", c.session.Address())
	c.publish()
	return nil
}

// Dispatch applies intent and returns the resulting snapshot. A rejected intent
// leaves the state at its pre-intent value, emits one rejection notification and
// returns the rejection error.
func (c *Controller) Dispatch(ctx context.Context, intent Intent) (Snapshot, error) {
	if intent == nil {
		return c.Snapshot(), errs.NewValueIsRequiredError("intent")
	}
	if err := intent.Validate(); err != nil {
		return c.Snapshot(), err
	}

	if _, ok := intent.(ConnectWalletIntent); ok {
		return c.connect(ctx)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return c.snapshotLocked(), ErrWorkflowClosed
	}

	c.logger.DebugContext(ctx, "Dispatching intent", "intent", intent.Name())

	err := c.handle(ctx, intent)
	if err != nil {
		c.reject(ctx, intent, err)
	}
	return c.snapshotLocked(), err
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Close cancels pending settlement timers and outstanding provider requests.
// Late callbacks find the controller closed and return without mutating anything.
// Close is idempotent.
func (c *Controller) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	c.cancel()
	if c.settlement != nil {
		c.settlement.cancel()
		c.settlement = nil
	}

	c.logger.Info("Workflow closed")
	return nil
}

func (c *Controller) handle(ctx context.Context, intent Intent) error {
	switch i := intent.(type) {
	case SetFieldIntent:
		return c.setField(i)
	case AdvanceStepIntent:
		return c.advanceStep()
	case RetreatStepIntent:
		return c.retreatStep()
	case ApplyPromoIntent:
		return c.applyPromo(i)
	case ConfirmPaymentIntent:
		return c.confirmPayment(ctx)
	case DisconnectWalletIntent:
		c.disconnect()
		return nil
	case SendFundsIntent:
		return c.sendFunds(i)
	case EditSendFormIntent:
		return c.editSendForm(i)
	case CancelOrderIntent:
		c.cancelOrder()
		return nil
	case StartNewOrderIntent:
		return c.startNewOrder()
	case AdvanceTrackingIntent:
		return c.advanceTracking()
	case SyncTrackingIntent:
		c.syncTracking()
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("intent", fmt.Errorf("%s is not supported", intent.Name()))
	}
}

func (c *Controller) setField(i SetFieldIntent) error {
	if c.tx.Status() != payment.Idle {
		return ErrDraftFrozen
	}
	if err := c.draft.SetField(i.Field(), i.Value()); err != nil {
		return err
	}
	c.publish()
	return nil
}

// advanceStep returns order.ErrValidationBlocked while the gate is closed. It
// is not turned into a notification; the snapshot CanAdvance already says so.
// Review is the last step, advancing from it is a no-op.
func (c *Controller) advanceStep() error {
	if c.tx.Status() != payment.Idle {
		return ErrDraftFrozen
	}
	if c.step == order.Review {
		return nil
	}
	next, err := c.step.Next(c.draft)
	if err != nil {
		return err
	}
	c.step = next
	c.publish()
	return nil
}

func (c *Controller) retreatStep() error {
	if c.tx.Status() != payment.Idle {
		return ErrDraftFrozen
	}
	prev, err := c.step.Previous()
	if err != nil {
		return err
	}
	if prev != c.step {
		c.step = prev
		c.publish()
	}
	return nil
}

func (c *Controller) applyPromo(i ApplyPromoIntent) error {
	if c.tx.Status() != payment.Idle {
		return ErrDraftFrozen
	}
	price, err := c.promo.ApplyCode(i.Code(), c.price)
	if err != nil {
		return err
	}
	c.price = price
	c.notify(info(CodePromoApplied, "Promo Applied",
		fmt.Sprintf("Discount of %s %s applied", price.Discount(), c.cfg.Currency), c.clock.Now()))
	c.publish()
	return nil
}

// confirmPayment freezes the draft and schedules settlement. Once the payment
// left Idle a confirm is a no-op until the order is reset.
func (c *Controller) confirmPayment(ctx context.Context) error {
	if status := c.tx.Status(); status != payment.Idle {
		c.logger.DebugContext(ctx, "Payment already submitted, ignoring confirm", "status", status)
		return nil
	}
	if !c.draft.Complete() {
		return order.ErrValidationBlocked
	}

	now := c.clock.Now()
	details := c.draft.Freeze()
	if err := c.tx.Start(c.session, c.price.Total(), details.RecipientAddress, details, now); err != nil {
		return err
	}
	c.step = order.Review

	s := newSettlement()
	c.settlement = s
	s.complete = c.scheduler.AfterFunc(c.cfg.SettlementDelay, func() { c.onSettled(s) })

	c.logger.InfoContext(ctx, "Payment submitted",
		"amount", c.tx.Amount(), "payer", c.tx.Payer(), "order_id", s.orderID.Short())
	c.notify(info(CodeTransactionSubmitted, "Transaction Submitted",
		fmt.Sprintf("Processing payment of %s %s", c.tx.Amount(), c.cfg.Currency), now))
	c.publish()
	return nil
}

// onSettled is T1: the payment completes and T2 is scheduled.
func (c *Controller) onSettled(s *settlement) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.settlement != s {
		return
	}

	now := c.clock.Now()
	if err := c.tx.Complete(now); err != nil {
		c.logger.Error("Payment settlement failed", "order_id", s.orderID.Short(), "error", err)
		return
	}
	if c.session.IsConnected() {
		c.session.RecordPayment(s.orderID, c.tx.Amount(), c.tx.Reference(), now)
	}

	c.logger.Info("Payment completed", "order_id", s.orderID.Short())
	c.notify(info(CodeOrderConfirmed, "Order Confirmed",
		fmt.Sprintf("Your order #%s has been confirmed", s.orderID.Short()), now))

	s.handoff = c.scheduler.AfterFunc(c.cfg.HandoffDelay, func() { c.onHandoff(s) })
	c.publish()
}

// onHandoff is T2: the tracker is seeded at OrderPlaced.
func (c *Controller) onHandoff(s *settlement) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.settlement != s {
		return
	}

	now := c.clock.Now()
	tracker, err := tracking.NewTracker(s.orderID, now, c.cfg.StageInterval, c.cfg.HandoffProgressOverride)
	if err != nil {
		c.logger.Error("Tracking hand-off failed", "order_id", s.orderID.Short(), "error", err)
		return
	}
	c.tracker = tracker
	c.settlement = nil

	c.logger.Info("Tracking started", "order_id", s.orderID.Short())
	c.notify(info(CodeTrackingStarted, "Drone Dispatched",
		fmt.Sprintf("Tracking order #%s", s.orderID.Short()), now))
	c.publish()
}

// connect runs the provider round trip with the lock released. The session
// attempt token tells a late answer from the current one: a disconnect or Close
// in between makes the answer stale and it is dropped.
func (c *Controller) connect(ctx context.Context) (Snapshot, error) {
	c.mu.Lock()
	if c.closed {
		defer c.mu.Unlock()
		return c.snapshotLocked(), ErrWorkflowClosed
	}
	attempt, err := c.session.BeginConnect()
	if errors.Is(err, wallet.ErrConnectInFlight) || errors.Is(err, wallet.ErrAlreadyConnected) {
		defer c.mu.Unlock()
		c.logger.DebugContext(ctx, "Ignoring connect", "reason", err)
		return c.snapshotLocked(), nil
	}
	if err != nil {
		defer c.mu.Unlock()
		return c.snapshotLocked(), err
	}
	c.publish()
	c.mu.Unlock()

	reqCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(c.lifetime, cancel)
	defer stop()

	provider, found := c.detector.Detect(reqCtx)
	var conn ports.Connection
	var callErr error
	if found {
		conn, callErr = provider.RequestConnection(reqCtx)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return c.snapshotLocked(), ErrWorkflowClosed
	}
	if attempt != c.session.CurrentAttempt() {
		c.logger.DebugContext(ctx, "Dropping stale wallet answer", "attempt", attempt)
		return c.snapshotLocked(), nil
	}

	intent := NewConnectWalletIntent()
	switch {
	case !found:
		err = wallet.ErrProviderUnavailable
	case callErr != nil:
		err = fmt.Errorf("%w: %w", wallet.ErrConnectionRejected, callErr)
	default:
		err = c.session.CompleteConnect(attempt, provider.Kind(), conn.Accounts, c.cfg.MockBalance)
	}

	if err != nil {
		_ = c.session.FailConnect(attempt)
		c.reject(ctx, intent, err)
		c.publish()
		return c.snapshotLocked(), err
	}

	c.logger.InfoContext(ctx, "Wallet connected", "provider", provider.Kind(), "address", c.session.Address())
	c.notify(info(CodeWalletConnected, "Wallet Connected",
		fmt.Sprintf("Connected to %s", c.session.Address()), c.clock.Now()))
	c.publish()
	return c.snapshotLocked(), nil
}

// disconnect is idempotent and only publishes when something changed.
func (c *Controller) disconnect() {
	was := c.session.Status()
	c.session.Disconnect()
	if was == wallet.Disconnected {
		return
	}
	c.notify(info(CodeWalletDisconnected, "Wallet Disconnected",
		"Your wallet has been disconnected", c.clock.Now()))
	c.publish()
}

func (c *Controller) sendFunds(i SendFundsIntent) error {
	now := c.clock.Now()
	transfer, err := c.session.Send(i.Amount(), i.Address(), now)
	if err != nil {
		return err
	}
	c.notify(info(CodeTransactionSubmitted, "Transaction Submitted",
		fmt.Sprintf("Sent %s %s to %s", transfer.Amount, c.cfg.Currency, transfer.Counterparty), now))
	c.publish()
	return nil
}

func (c *Controller) editSendForm(i EditSendFormIntent) error {
	if !c.session.IsConnected() {
		return wallet.ErrNotConnected
	}
	c.session.EditSendForm(i.Amount(), i.Address())
	c.publish()
	return nil
}

// cancelOrder discards the draft together with any pending settlement. The
// tracker of an earlier order is kept.
func (c *Controller) cancelOrder() {
	if c.settlement != nil {
		c.settlement.cancel()
		c.settlement = nil
	}
	c.resetOrder()
	c.notify(info(CodeOrderCancelled, "Order Cancelled", "Your draft has been discarded", c.clock.Now()))
	c.publish()
}

func (c *Controller) startNewOrder() error {
	if c.settlement != nil {
		return ErrWorkflowBusy
	}
	c.resetOrder()
	c.publish()
	return nil
}

func (c *Controller) advanceTracking() error {
	if c.tracker == nil {
		return ErrNoTracker
	}
	if c.tracker.Advance() {
		c.afterTrackingMoved()
	}
	return nil
}

func (c *Controller) syncTracking() {
	if c.tracker == nil {
		return
	}
	if c.tracker.Sync(c.clock.Now()) > 0 {
		c.afterTrackingMoved()
	}
}

func (c *Controller) afterTrackingMoved() {
	if c.tracker.IsDelivered() {
		c.notify(info(CodeOrderDelivered, "Order Delivered",
			fmt.Sprintf("Order #%s has been delivered", c.tracker.OrderID().Short()), c.clock.Now()))
	}
	c.publish()
}

func (c *Controller) resetOrder() {
	c.step = order.Addresses
	c.draft = order.NewDraft()
	c.price = pricing.NewPriceSummary(c.cfg.Subtotal, c.cfg.Shipping)
	c.tx = payment.NewTransaction()
}

// reject notifies err if it belongs to the rejection taxonomy.
func (c *Controller) reject(ctx context.Context, intent Intent, err error) {
	n, ok := rejectionFor(err, c.clock.Now())
	if !ok {
		if !errors.Is(err, order.ErrValidationBlocked) {
			c.logger.WarnContext(ctx, "Intent failed", "intent", intent.Name(), "error", err)
		}
		return
	}
	c.logger.InfoContext(ctx, "Intent rejected", "intent", intent.Name(), "code", n.Code)
	c.notify(n)
}

func (c *Controller) notify(n Notification) {
	c.presenter.Notify(n)
}

func (c *Controller) publish() {
	c.version++
	c.presenter.Render(c.snapshotLocked())
}

func required(name string, v any) error {
	if v == nil {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
