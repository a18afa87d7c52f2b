// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cordic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ucordic/qfmt"
)

// await drains the busy flag the way the firmware does.
func await(u *Unit) (polls int) {
	for u.IsBusy() {
		polls++
	}
	return
}

func TestUnitEnable(t *testing.T) {
	assert := assert.New(t)

	u := NewUnit()
	assert.False(u.IsEnabled())

	err := u.Sin(qfmt.Q31FromDeg(30))
	assert.ErrorIs(err, ErrNotEnabled)

	u.Enable()
	assert.True(u.IsEnabled())

	err = u.Sin(qfmt.Q31FromDeg(30))
	assert.NoError(err)
	await(u)
}

func TestUnitBusyProtocol(t *testing.T) {
	assert := assert.New(t)

	u := NewUnit()
	u.Enable()

	assert.False(u.IsBusy())

	err := u.Cos(qfmt.Q31FromDeg(45))
	assert.NoError(err)

	err = u.Sin(qfmt.Q31FromDeg(45))
	assert.ErrorIs(err, ErrBusy)

	polls := await(u)
	assert.Equal(CIRCULAR_ITERATIONS-1, polls)
	assert.False(u.IsBusy())

	err = u.Sin(qfmt.Q31FromDeg(45))
	assert.NoError(err)
	await(u)
}

func TestUnitDisableDiscards(t *testing.T) {
	assert := assert.New(t)

	u := NewUnit()
	u.Enable()

	err := u.Sin(qfmt.Q31FromDeg(10))
	assert.NoError(err)

	u.Disable()
	assert.False(u.IsBusy())

	err = u.Sin(qfmt.Q31FromDeg(10))
	assert.ErrorIs(err, ErrNotEnabled)
}

func TestSinCos(t *testing.T) {
	assert := assert.New(t)

	u := NewUnit()
	u.Enable()

	table := []float64{0, 1, -1, 15, -15, 30, 45, -45, 60, 89, 90, -90}

	for _, deg := range table {
		rad := qfmt.DegToRad(deg)

		assert.NoError(u.Sin(qfmt.Q31FromDeg(deg)))
		await(u)
		assert.InDelta(math.Sin(rad), u.ResultQ31().Float(), 1e-6, "sin(%v)", deg)

		assert.NoError(u.Cos(qfmt.Q31FromDeg(deg)))
		await(u)
		assert.InDelta(math.Cos(rad), u.ResultQ31().Float(), 1e-6, "cos(%v)", deg)
	}
}

func TestTan(t *testing.T) {
	assert := assert.New(t)

	u := NewUnit()
	u.Enable()

	table := []struct {
		Deg   float64
		Delta float64
	}{
		{Deg: 0, Delta: 1e-3},
		{Deg: 30, Delta: 1e-3},
		{Deg: 45, Delta: 1e-3},
		{Deg: -45, Delta: 1e-3},
		{Deg: 60, Delta: 1e-3},
		{Deg: 80, Delta: 1e-2},
		{Deg: 89, Delta: 5e-2}, // steep slope amplifies angle quantization
		{Deg: -89, Delta: 5e-2},
	}

	for _, testcase := range table {
		assert.NoError(u.Tan(qfmt.Q31FromDeg(testcase.Deg)))
		await(u)
		want := math.Tan(qfmt.DegToRad(testcase.Deg))
		assert.InDelta(want, u.Result20Q11().Float(), testcase.Delta, "tan(%v)", testcase.Deg)
	}
}

func TestArcTan(t *testing.T) {
	assert := assert.New(t)

	u := NewUnit()
	u.Enable()

	const scaling = 127.99

	table := []float64{0, 0.5, -0.5, 1, -1, 10, 57, -57}

	for _, value := range table {
		num := qfmt.Q8_23FromFloat(value * scaling)
		den := qfmt.Q8_23FromFloat(scaling)

		assert.NoError(u.ArcTan(den, num))
		await(u)

		got := qfmt.RadToDeg(u.ResultQ31().Rad())
		want := qfmt.RadToDeg(math.Atan2(value*scaling, scaling))
		assert.InDelta(want, got, 0.01, "atan(%v)", value)
	}
}

func TestParkTransform(t *testing.T) {
	assert := assert.New(t)

	u := NewUnit()
	u.Enable()

	table := []struct {
		Deg         float64
		Alpha, Beta float64
	}{
		{Deg: 0, Alpha: 1, Beta: 0},
		{Deg: 0, Alpha: 0, Beta: 1},
		{Deg: 45, Alpha: 1, Beta: 0},
		{Deg: -45, Alpha: 0.5, Beta: -0.5},
		{Deg: 90, Alpha: 1, Beta: 1},
		{Deg: 30, Alpha: -0.25, Beta: 0.75},
	}

	for _, testcase := range table {
		angle := qfmt.Q31FromDeg(testcase.Deg)
		alpha := qfmt.Q31FromFloat(testcase.Alpha)
		beta := qfmt.Q31FromFloat(testcase.Beta)

		assert.NoError(u.ParkTransform(angle, alpha, beta))
		await(u)

		id, iq := u.ParkResult()

		rad := qfmt.DegToRad(testcase.Deg)
		sin, cos := math.Sin(rad), math.Cos(rad)
		wantId := testcase.Alpha*cos + testcase.Beta*sin
		wantIq := testcase.Beta*cos - testcase.Alpha*sin

		assert.InDelta(wantId, id.Float()/CircularGain, 1e-4, "%+v", testcase)
		assert.InDelta(wantIq, iq.Float()/CircularGain, 1e-4, "%+v", testcase)
	}
}

func TestSinhCosh(t *testing.T) {
	assert := assert.New(t)

	u := NewUnit()
	u.Enable()

	table := []float64{0, 10, -10, 30, 45, -45, 60, -60}

	for _, deg := range table {
		rad := qfmt.DegToRad(deg)

		assert.NoError(u.Sinh(qfmt.Q31FromDeg(deg)))
		await(u)
		assert.InDelta(math.Sinh(rad), u.Result1Q30().Float(), 1e-4, "sinh(%v)", deg)

		assert.NoError(u.Cosh(qfmt.Q31FromDeg(deg)))
		await(u)
		assert.InDelta(math.Cosh(rad), u.Result1Q30().Float(), 1e-4, "cosh(%v)", deg)
	}
}

func TestTanh(t *testing.T) {
	assert := assert.New(t)

	u := NewUnit()
	u.Enable()

	table := []float64{0, 10, -10, 30, 45, 60, -60}

	for _, deg := range table {
		assert.NoError(u.Tanh(qfmt.Q31FromDeg(deg)))
		await(u)
		want := math.Tanh(qfmt.DegToRad(deg))
		assert.InDelta(want, u.Result20Q11().Float(), 1e-3, "tanh(%v)", deg)
	}
}

func TestArcTanh(t *testing.T) {
	assert := assert.New(t)

	u := NewUnit()
	u.Enable()

	const scaling = 127.99

	table := []float64{0, 0.1, -0.1, 0.5, -0.5, 0.8, -0.8}

	for _, value := range table {
		num := qfmt.Q8_23FromFloat(value * scaling)
		den := qfmt.Q8_23FromFloat(scaling)

		assert.NoError(u.ArcTanh(den, num))
		await(u)

		got := qfmt.RadToDeg(u.ResultQ31().Rad())
		want := qfmt.RadToDeg(math.Atanh(value))
		assert.InDelta(want, got, 0.02, "atanh(%v)", value)
	}
}

func TestSqrt(t *testing.T) {
	assert := assert.New(t)

	u := NewUnit()
	u.Enable()

	table := []float64{0.25, 0.5, 0.75, 0.9, 0.0625, 0.01, 0.0001}

	for _, value := range table {
		assert.NoError(u.Sqrt(qfmt.Q31FromFloat(value)))
		await(u)
		assert.InDelta(math.Sqrt(value), u.ResultQ31().Float(), 1e-5, "sqrt(%v)", value)
	}

	// Zero operand reports zero.
	assert.NoError(u.Sqrt(0))
	await(u)
	assert.Equal(qfmt.Q31(0), u.ResultQ31())
}

func TestGains(t *testing.T) {
	assert := assert.New(t)

	assert.InDelta(1.646760258121, CircularGain, 1e-9)
	assert.InDelta(0.828159, HyperbolicGain, 1e-4)
}
