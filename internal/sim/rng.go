package sim

// Rand is the source of randomness for ghost decisions. *rand.Rand from
// math/rand satisfies it; tests pass a seeded one or a scripted fake.
type Rand interface {
	Float64() float64
	Intn(n int) int
}
