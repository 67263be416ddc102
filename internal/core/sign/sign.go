package sign

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument indicates a sign of zero was given where a direction is required.
var ErrInvalidArgument = errors.New("sign must be either greater than or less than zero")

// Sign is a counting direction: Positive counts up, Negative counts down.
type Sign int8

const (
	Negative Sign = -1
	Positive Sign = 1
)

// NonZero returns the sign of x, treating negative zero as Negative and
// positive zero as Positive. It never returns zero.
func NonZero(x float64) Sign {
	switch {
	case x > 0:
		return Positive
	case x < 0:
		return Negative
	case math.Signbit(x):
		return Negative
	default:
		return Positive
	}
}

// ZeroFrom returns a zero carrying the given sign.
func ZeroFrom(s Sign) (float64, error) {
	switch {
	case s > 0:
		return 0, nil
	case s < 0:
		return math.Copysign(0, -1), nil
	default:
		return 0, fmt.Errorf("zero from sign %d: %w", s, ErrInvalidArgument)
	}
}

// Direction is either paused, remembering which way to resume, or running
// in one direction. The zero value is paused and resumes upward.
type Direction struct {
	sign    Sign
	running bool
}

// Paused returns a stopped direction that resumes toward resume.
func Paused(resume Sign) Direction {
	return Direction{sign: normalize(resume)}
}

// Running returns a direction moving toward s.
func Running(s Sign) Direction {
	return Direction{sign: normalize(s), running: true}
}

// FromFloat reads a direction from its float encoding: a signed zero is
// paused, anything else is running with that sign.
func FromFloat(x float64) Direction {
	if x == 0 {
		return Paused(NonZero(x))
	}
	return Running(NonZero(x))
}

// Sign returns the running sign, or the resume sign when paused.
func (direction Direction) Sign() Sign {
	return normalize(direction.sign)
}

// IsRunning reports whether the direction is moving.
func (direction Direction) IsRunning() bool {
	return direction.running
}

// Pause keeps the sign and stops motion.
func (direction Direction) Pause() Direction {
	return Paused(direction.Sign())
}

// Resume starts motion in the remembered sign.
func (direction Direction) Resume() Direction {
	return Running(direction.Sign())
}

// Reverse flips the sign and keeps the running state.
func (direction Direction) Reverse() Direction {
	return Direction{sign: -direction.Sign(), running: direction.running}
}

// Float encodes the direction as +1, -1, +0 or -0.
func (direction Direction) Float() float64 {
	if direction.running {
		return float64(direction.Sign())
	}
	zero, err := ZeroFrom(direction.Sign())
	if err != nil {
		panic(err)
	}
	return zero
}

func (direction Direction) String() string {
	magnitude := "0"
	if direction.running {
		magnitude = "1"
	}
	if direction.Sign() < 0 {
		return "-" + magnitude
	}
	return "+" + magnitude
}

func normalize(s Sign) Sign {
	if s < 0 {
		return Negative
	}
	return Positive
}
