package statements

import (
	"go.uber.org/zap"

	"github.com/elda27/indra/causal"
	"github.com/elda27/indra/metrics"
)

// AssembleOption configures graph assembly.
type AssembleOption func(*assembleOptions)

type assembleOptions struct {
	allowLoops bool
}

// WithLoops lets self-regulation statements (subject == object) assemble
// into self-loop edges instead of being skipped.
func WithLoops() AssembleOption {
	return func(o *assembleOptions) { o.allowLoops = true }
}

// Assemble builds a signed causal graph from statements: one edge per
// polarity-carrying statement, with its belief and evidence on the edge.
//
// Statements that cannot become edges never fail the assembly; they are
// skipped with a warning and counted in metrics.StatementsSkipped. That
// covers types without polarity (Complex, Phosphorylation, ...), empty
// endpoints, beliefs outside [0, 1], and self-regulation without WithLoops.
// An empty graph is a valid outcome.
func Assemble(stmts []Statement, opts ...AssembleOption) (*causal.Graph, error) {
	var cfg assembleOptions
	for _, opt := range opts {
		opt(&cfg)
	}
	var gopts []causal.GraphOption
	if cfg.allowLoops {
		gopts = append(gopts, causal.WithLoops())
	}
	g := causal.NewGraph(gopts...)

	for _, st := range stmts {
		sign, ok := st.Type.Sign()
		if !ok {
			skipStatement(st, zap.String("reason", "statement type carries no polarity"))
			continue
		}
		if _, err := g.AddEdge(st.Subject, st.Object, sign, st.Belief, causal.WithEvidence(st.Evidence...)); err != nil {
			skipStatement(st, zap.Error(err))
			continue
		}
	}

	return g, nil
}

// skipStatement logs one dropped statement and counts it.
func skipStatement(st Statement, why zap.Field) {
	logger().Warn("skipping statement during assembly",
		zap.String("id", st.ID.String()),
		zap.Stringer("statement", st),
		why)
	metrics.StatementsSkipped.Inc()
}
