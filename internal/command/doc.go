// Package command wraps command functions into callables with uniform
// argument checking, result printing and exit codes.
//
// A command takes zero or one explicit argument followed by a [Done]
// callback. [Func] and [ArgFunc] fix the argument count at compile time;
// other function values are checked by reflection when invoked.
// [Invoker.Execute] reports "missing command method" or "incorrect
// arguments" before the command runs, and [Invoker.PrintAndExit] is the one
// place that ends the process.
package command
