// SPDX-License-Identifier: MIT

package netfile

import "errors"

// ErrSyntax is wrapped by every parse error that is not a structural
// problem of the described network (those surface network.ErrMalformedNetwork).
var ErrSyntax = errors.New("netfile: syntax error")
