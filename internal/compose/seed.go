package compose

// SeedModulus bounds every derived seed: 0 <= seed < SeedModulus.
const SeedModulus = 1000003

const seedMultiplier = 31

// Seed drives pool rotation. It is a polynomial rolling hash and carries no
// collision resistance.
type Seed int

// DeriveSeed folds "template|tone|cleaned" over its code points with
// acc = (acc*31 + r) mod SeedModulus.
func DeriveSeed(template, tone, cleaned string) Seed {
	acc := 0
	for _, r := range template + "|" + tone + "|" + cleaned {
		acc = (acc*seedMultiplier + int(r)) % SeedModulus
	}
	return Seed(acc)
}
