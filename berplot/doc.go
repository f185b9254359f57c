// Package berplot is an optional observability collaborator for ldpc.Decode:
// a Sink accumulates the (iteration, estimate, posteriorLLR) callbacks an
// ldpc.Observer receives and renders them as a gonum/plot PNG tracing
// estimate weight (number of 1 bits) and mean LLR magnitude across
// iterations.
//
// Nothing in the root ldpc package or bitmatrix imports this package — a
// caller who wants a convergence trace wires berplot.NewSink into
// ldpc.WithObserver explicitly.
package berplot
