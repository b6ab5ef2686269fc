package pathfinding

import (
	"go.uber.org/zap"

	"github.com/elda27/indra/causal"
)

// SignedNode is an entity in a specific regulation state: up (Positive) or
// down (Negative).
type SignedNode struct {
	// ID is the entity name.
	ID string

	// Sign is the regulation state of the entity.
	Sign causal.Sign
}

// String renders the node in "BRAF+" / "BRAF-" notation.
func (n SignedNode) String() string { return n.ID + n.Sign.String() }

// SignedEdge is the (source, target, sign) triple form of one influence.
type SignedEdge struct {
	// From is the source entity ID.
	From string

	// To is the target entity ID.
	To string

	// Sign is the edge polarity.
	Sign causal.Sign
}

// PathSignToSignedNodes translates a signed edge into its signed-node pair.
//
// Sign definitions: + == 0, - == 1.
//
//	positive edge -> (source+, target+)
//	negative edge -> (source+, target-)
//
// (source-, target-) and (source-, target+) are equally consistent but are
// never materialised: search starts from the source in its reference state,
// so only source-positive pairs occur.
//
// edgeSign is loosely typed the way graph exports deliver it and is parsed
// with causal.ParseSign. On a decode failure the pair cannot be formed: a
// warning is logged and ok is false, with both nodes zero-valued.
func PathSignToSignedNodes(source, target string, edgeSign any) (src, dst SignedNode, ok bool) {
	s, err := causal.ParseSign(edgeSign)
	if err != nil {
		logger().Warn("invalid sign when translating edge to signed nodes",
			zap.Any("sign", edgeSign),
			zap.Error(err))

		return SignedNode{}, SignedNode{}, false
	}

	if s == causal.Positive {
		return SignedNode{ID: source, Sign: causal.Positive},
			SignedNode{ID: target, Sign: causal.Positive}, true
	}

	return SignedNode{ID: source, Sign: causal.Positive},
		SignedNode{ID: target, Sign: causal.Negative}, true
}

// SignedNodesToSignedEdge is the inverse translation: assuming source and
// target form one hop of a signed path, return the corresponding
// (from, to, sign) triple. Equal node signs make a positive edge, differing
// signs a negative one (the parity rule). An invalid node sign cannot be
// decoded: a warning is logged and ok is false, with the edge zero-valued.
func SignedNodesToSignedEdge(source, target SignedNode) (SignedEdge, bool) {
	if !source.Sign.Valid() || !target.Sign.Valid() {
		logger().Warn("invalid signed nodes when translating to signed edge",
			zap.String("source", source.ID),
			zap.Uint8("source_sign", uint8(source.Sign)),
			zap.String("target", target.ID),
			zap.Uint8("target_sign", uint8(target.Sign)))

		return SignedEdge{}, false
	}

	if source.Sign == target.Sign {
		return SignedEdge{From: source.ID, To: target.ID, Sign: causal.Positive}, true
	}

	return SignedEdge{From: source.ID, To: target.ID, Sign: causal.Negative}, true
}
