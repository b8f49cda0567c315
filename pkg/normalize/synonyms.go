package normalize

// DefaultSynonyms maps common surface variants of mathematical concept
// names to their canonical plural/standard form. The entries are
// configuration data, not part of the normalization contract; deployments
// may inject their own table.
var DefaultSynonyms = map[string]string{
	"rogers-ramanujan identity":    "rogers-ramanujan identities",
	"rr identities":                "rogers-ramanujan identities",
	"rr identity":                  "rogers-ramanujan identities",
	"bailey's lemma":               "bailey lemma",
	"hall-littlewood polynomial":   "hall-littlewood polynomials",
	"hall-littlewood function":     "hall-littlewood polynomials",
	"hall-littlewood functions":    "hall-littlewood polynomials",
	"macdonald polynomial":         "macdonald polynomials",
	"schur function":               "schur functions",
	"schur polynomial":             "schur functions",
	"cylindric plane partition":    "cylindric partitions",
	"cylindric plane partitions":   "cylindric partitions",
	"cpp":                          "cylindric partitions",
	"cpps":                         "cylindric partitions",
	"q-binomial coefficient":       "q-binomial coefficients",
	"gaussian polynomial":          "q-binomial coefficients",
	"gaussian polynomials":         "q-binomial coefficients",
	"quasi-symmetric function":     "quasi-symmetric functions",
	"quasisymmetric function":      "quasi-symmetric functions",
	"quasisymmetric functions":     "quasi-symmetric functions",
	"crystal base":                 "crystal bases",
	"andrews-gordon identity":      "andrews-gordon identities",
	"a2 andrews-gordon identities": "a2 andrews-gordon identities",
	"plane partition":              "plane partitions",
}
