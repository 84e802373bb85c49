// Package prompt defines the contract between answer collection and the
// interactive question engine that renders questions and reads replies.
//
// A [Prompter] receives one batch of [Question] values per call and returns
// the answers keyed by question name. Two adapters are provided:
//   - [Terminal] asks on the controlling terminal with line editing and
//     masked password input
//   - [Echo] answers every question from its default without reading input,
//     for non-interactive runs and tests
package prompt
