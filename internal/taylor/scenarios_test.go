package taylor_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/taylorint/internal/series"
	"github.com/san-kum/taylorint/internal/taylor"
)

func logistic(dx, x []series.Series[float64], p any, t series.Series[float64]) {
	dx[0] = x[0].Mul(x[0])
}

func harmonic(dx, x []series.Series[float64], p any, t series.Series[float64]) {
	dx[0] = x[1]
	dx[1] = x[0].Neg()
}

var _ = Describe("Taylor driver end-to-end scenarios", func() {
	It("reproduces the logistic blow-up closed form", func() {
		cfg := taylor.Config{T0: 0, TMax: 0.3, Order: 25, AbsTol: 1e-20, MaxSteps: 100}
		res, err := taylor.Steps(taylor.VectorField[float64](logistic), "", nil, 1, []float64{3.0}, cfg, nil)
		Expect(err).NotTo(HaveOccurred())

		nsteps := len(res.Times) - 1
		Expect(nsteps).To(BeNumerically("<=", 100))

		tf := res.Times[len(res.Times)-1]
		Expect(tf).To(BeNumerically("<=", 0.3+1e-12))

		want := 3.0 / (1 - 3.0*tf)
		Expect(res.States[len(res.States)-1][0]).To(BeNumerically("~", want, 1e-14))
	})

	It("conserves x^2+y^2=1 for the vector harmonic oscillator", func() {
		cfg := taylor.Config{T0: 0, TMax: 2 * math.Pi, Order: 28, AbsTol: 1e-20, MaxSteps: 500}
		res, err := taylor.Steps(taylor.VectorField[float64](harmonic), "", nil, 2, []float64{1, 0}, cfg, nil)
		Expect(err).NotTo(HaveOccurred())

		for _, s := range res.States {
			invariant := s[0]*s[0] + s[1]*s[1]
			Expect(invariant).To(BeNumerically("~", 1.0, 1e-12))
		}
		final := res.States[len(res.States)-1]
		Expect(final[0]).To(BeNumerically("~", 1.0, 1e-12))
		Expect(final[1]).To(BeNumerically("~", 0.0, 1e-12))
	})

	It("integrates the harmonic oscillator correctly in reverse time", func() {
		cfg := taylor.Config{T0: 0, TMax: -2 * math.Pi, Order: 28, AbsTol: 1e-20, MaxSteps: 500}
		res, err := taylor.Steps(taylor.VectorField[float64](harmonic), "", nil, 2, []float64{1, 0}, cfg, nil)
		Expect(err).NotTo(HaveOccurred())

		final := res.States[len(res.States)-1]
		Expect(final[0]).To(BeNumerically("~", 1.0, 1e-12))
		Expect(final[1]).To(BeNumerically("~", 0.0, 1e-12))
	})

	It("samples the logistic closed form at 301 range-mode points", func() {
		cfg := taylor.Config{T0: 0, TMax: 0.3, Order: 25, AbsTol: 1e-20, MaxSteps: 1000}
		trange := make([]float64, 301)
		for i := range trange {
			trange[i] = float64(i) * 0.001
		}
		out, _, err := taylor.Range(taylor.VectorField[float64](logistic), "", nil, 1, []float64{3.0}, trange, cfg, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(HaveLen(301))
		Expect(out[0][0]).To(Equal(3.0))

		last := trange[len(trange)-1]
		want := 3.0 / (1 - 3.0*last)
		Expect(out[len(out)-1][0]).To(BeNumerically("~", want, 1e-10))
	})

	It("terminates at the step limit with exactly 4 samples and a warning", func() {
		cfg := taylor.Config{T0: 0, TMax: 0.3, Order: 25, AbsTol: 1e-20, MaxSteps: 3}
		res, err := taylor.Steps(taylor.VectorField[float64](logistic), "", nil, 1, []float64{3.0}, cfg, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Times).To(HaveLen(4))
		Expect(res.Warning).NotTo(BeEmpty())
	})

	It("falls back to the degenerate-tail step rule for a zero field", func() {
		zero := taylor.VectorField[float64](func(dx, x []series.Series[float64], p any, t series.Series[float64]) {
			dx[0] = series.New[float64](x[0].Order())
		})
		cfg := taylor.Config{T0: 0, TMax: 1, Order: 10, AbsTol: 1e-20, MaxSteps: 50}
		res, err := taylor.Steps(zero, "", nil, 1, []float64{1.0}, cfg, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.States[len(res.States)-1][0]).To(Equal(1.0))
	})
})
