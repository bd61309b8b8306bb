package market

// Platform describes one competitor listing platform used for the
// synthetic price comparison rows. Variance scales the regional baseline
// rate; none of these numbers come from the platforms themselves.
type Platform struct {
	Name     string
	Variance float64
}

// Platforms are the four comparison platforms, in display order.
var Platforms = []Platform{
	{Name: "OLX.uz", Variance: 0.96},
	{Name: "Uybor.uz", Variance: 1.03},
	{Name: "Domtut.uz", Variance: 0.99},
	{Name: "Makler.uz", Variance: 1.06},
}
