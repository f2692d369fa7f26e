// Package commands defines the droneflowctl CLI.
//
// Commands
//
//   - status         Print the current workflow snapshot
//   - set            Set one draft field
//   - next, back     Move through the wizard steps
//   - promo          Apply a promo code
//   - confirm        Confirm and pay for the draft
//   - connect        Connect the wallet
//   - disconnect     Disconnect the wallet
//   - send           Send funds from the connected wallet
//   - cancel, new    Discard the draft or start over after hand-off
//   - advance        Move the tracked delivery one stage forward
//   - notifications  List recent notifications
//
// Every command talks to a running server (--server) and prints the snapshot
// it answers with, also when the intent was rejected.
package commands
