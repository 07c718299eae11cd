// Package bayesnet answers conditional probability queries on Bayesian
// networks of binary variables, exactly.
//
// What is in the box?
//
//	network/     Network, Builder, Evidence, topological order, table lookup
//	factor/      dense factors over sorted scopes: Make, Pointwise, SumOut, Product
//	inference/   EnumerationAsk, EliminationAsk, Ask, Normalize
//	netfile/     text (.bn) and YAML network files
//	query/       "P(X|A=t,B=f)" parsing and answer formatting
//	builder/     textbook and seeded synthetic networks
//	cmd/bayesnet command-line front end
//
// Quick example (the burglary alarm network):
//
//	    B   E
//	     \ /
//	      A
//	     / \
//	    J   M
//
//	net, _ := builder.BuildNetwork(nil, builder.Alarm())
//	d, _ := inference.EliminationAsk(net, "B", network.Evidence{"J": true, "M": true})
//	// d.True ≈ 0.2842
//
// From the shell:
//
//	bayesnet ask alarm.bn elim "P(B|J=t,M=t)"
package bayesnet
