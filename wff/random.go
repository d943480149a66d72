package wff

// DefaultLeafProbability is the probability, for a node above the maximum depth, to be an atomic formula.
const DefaultLeafProbability = 0.35

// Rand is a source of random numbers. *math/rand.Rand satisfies it.
type Rand interface {
	// Float64 returns a number in [0.0,1.0).
	Float64() float64
	// Intn returns a number in [0,n).
	Intn(n int) int
}

// A Generator builds random formulas.
type Generator struct {
	rnd      Rand
	leafProb float64
}

// NewGenerator returns a generator drawing its random numbers from rnd, with DefaultLeafProbability.
func NewGenerator(rnd Rand) *Generator {
	return &Generator{rnd: rnd, leafProb: DefaultLeafProbability}
}

// WithLeafProbability returns a copy of g using p as its leaf probability.
func (g *Generator) WithLeafProbability(p float64) *Generator {
	g2 := *g
	g2.leafProb = p
	return &g2
}

// Random returns a random formula whose depth is at most maxDepth.
// At each node, until maxDepth is reached, the node is atomic with the generator's leaf probability;
// otherwise its connective is picked uniformly among the five connectives.
// Nodes at depth maxDepth are always atomic. A negative maxDepth is handled as 0,
// a maxDepth greater than MaxNesting as MaxNesting.
func (g *Generator) Random(maxDepth int) Formula {
	if maxDepth > MaxNesting {
		maxDepth = MaxNesting
	}
	return g.build(0, maxDepth)
}

func (g *Generator) build(depth, maxDepth int) Formula {
	if depth >= maxDepth || g.rnd.Float64() < g.leafProb {
		return g.letter()
	}
	k := connectives[g.rnd.Intn(len(connectives))]
	if k == Negation {
		return not{g.build(depth+1, maxDepth)}
	}
	left := g.build(depth+1, maxDepth)
	right := g.build(depth+1, maxDepth)
	return binary{kind: k, left: left, right: right}
}

func (g *Generator) letter() Formula {
	return atom(alphabet[g.rnd.Intn(len(alphabet))])
}
