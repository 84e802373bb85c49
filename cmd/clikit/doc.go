// Clikit collects profile settings interactively and prints them back with
// secrets masked.
//
// It asks only for settings that have no saved value, or for all of them
// with --update, and ends every command with exit code 0 on success or 1 on
// error.
//
// Usage:
//
//	clikit configure             # ask for missing settings and save them
//	clikit configure --update    # ask for every setting again
//	clikit configure --defaults  # accept defaults without prompting
//	clikit show                  # print the saved profile
//	clikit get <key>             # print one setting
//	clikit region                # pick the region from a list
//	clikit reset                 # delete the saved profile
package main
