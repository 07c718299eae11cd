// SPDX-License-Identifier: MIT

// Command bayesnet loads a network file and answers conditional queries.
//
//	bayesnet ask alarm.bn elim "P(B|J=t,M=t)"
//	bayesnet order alarm.bn
//	bayesnet factor alarm.bn A "B=t"
//	bayesnet convert alarm.bn --to yaml
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
