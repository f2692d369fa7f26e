// Package walletprovider adapts wallet extensions to ports.WalletProvider.
//
// An extension is anything that answers EIP-1193 style requests: a method name
// in, a JSON document out. Two capability sets are understood:
//
//   - Compass: sei_connect returns {"accounts":[{"address":...}]},
//     sei_accounts returns [{"address":...}].
//   - Ethereum: eth_requestAccounts and eth_accounts both return ["0x..."].
//
// Registry picks the preferred installed provider (Compass before Ethereum).
// Extension is the in-process extension used by the server and the tests.
package walletprovider
