// SPDX-License-Identifier: MIT

package bayesnet

// Version is the release reported by the CLI.
const Version = "0.3.0"
