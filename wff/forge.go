package wff

// AtomicRule is the rule text of the source of atomic tiles.
const AtomicRule = "Every atomic sentence (A, B, C, etc.) is a sentence."

// A ForgeConfig describes the forge associated with a connective.
type ForgeConfig struct {
	Kind       Kind
	Title      string // e.g "Conjunction Forge"
	RuleText   string // The formation rule the forge implements
	Template   string // How slots are laid out
	ButtonText string
	Slots      int // Number of operands expected
	Symbol     string
}

var forgeConfigs = map[Kind]ForgeConfig{
	Negation: {
		Kind:       Negation,
		Title:      "Negation Forge",
		RuleText:   "If P is a sentence, then ¬P is a sentence.",
		Template:   "¬ [DROP_SLOT]",
		ButtonText: "Create ¬P",
	},
	Conjunction: {
		Kind:       Conjunction,
		Title:      "Conjunction Forge",
		RuleText:   "If P and Q are sentences, then (P ∧ Q) is a sentence.",
		Template:   "( [DROP_SLOT_LEFT] ∧ [DROP_SLOT_RIGHT] )",
		ButtonText: "Create (P∧Q)",
	},
	Disjunction: {
		Kind:       Disjunction,
		Title:      "Disjunction Forge",
		RuleText:   "If P and Q are sentences, then (P ∨ Q) is a sentence.",
		Template:   "( [DROP_SLOT_LEFT] ∨ [DROP_SLOT_RIGHT] )",
		ButtonText: "Create (P∨Q)",
	},
	Conditional: {
		Kind:       Conditional,
		Title:      "Conditional Forge",
		RuleText:   "If P and Q are sentences, then (P → Q) is a sentence.",
		Template:   "( [DROP_SLOT_LEFT] → [DROP_SLOT_RIGHT] )",
		ButtonText: "Create (P→Q)",
	},
	Biconditional: {
		Kind:       Biconditional,
		Title:      "Biconditional Forge",
		RuleText:   "If P and Q are sentences, then (P ↔ Q) is a sentence.",
		Template:   "( [DROP_SLOT_LEFT] ↔ [DROP_SLOT_RIGHT] )",
		ButtonText: "Create (P↔Q)",
	},
}

func init() {
	// Slots and symbols are those of the connective.
	for k, cfg := range forgeConfigs {
		cfg.Slots = k.Arity()
		cfg.Symbol = k.Symbol()
		forgeConfigs[k] = cfg
	}
}

// ForgeFor returns the configuration of the forge associated with connective k.
// ok is false if k is not a connective.
func ForgeFor(k Kind) (cfg ForgeConfig, ok bool) {
	cfg, ok = forgeConfigs[k]
	return cfg, ok
}

// Forges returns the configuration of all forges, in display order.
func Forges() []ForgeConfig {
	res := make([]ForgeConfig, len(connectives))
	for i, k := range connectives {
		res[i] = forgeConfigs[k]
	}
	return res
}
