package modelcheck

import (
	"go.uber.org/zap"

	"github.com/elda27/indra/causal"
	"github.com/elda27/indra/metrics"
	"github.com/elda27/indra/statements"
)

// CheckStatement tests whether the graph can explain a statement: it maps
// the statement type to a desired path sign and searches from subject to
// object.
//
// Types without polarity (Complex, Phosphorylation, ...) cannot be checked
// against a signed graph; the result is StatementNotHandled with no search
// attempted. Everything else behaves exactly like FindPaths.
func CheckStatement(g *causal.Graph, stmt statements.Statement, opts ...Option) (*Result, error) {
	sign, ok := stmt.Type.Sign()
	if !ok {
		logger().Debug("statement type carries no polarity",
			zap.Stringer("statement", stmt))
		res := &Result{Code: StatementNotHandled}
		metrics.SearchesTotal.WithLabelValues(res.Code.String()).Inc()

		return res, nil
	}

	return FindPaths(g, stmt.Subject, stmt.Object, sign, opts...)
}
