// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package console

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/ezrec/ucordic/cordic"
	"github.com/ezrec/ucordic/qfmt"
)

// TOKEN_LIMIT caps an input token, matching the firmware's 120-character
// read buffer.
const TOKEN_LIMIT = 120

// Accelerator is the rotation-engine capability the console drives.
// Submits are non-blocking; IsBusy is polled until the result registers
// are valid.
type Accelerator interface {
	ParkTransform(angle qfmt.Q31, alpha, beta qfmt.Q31) error
	Sin(angle qfmt.Q31) error
	Cos(angle qfmt.Q31) error
	Tan(angle qfmt.Q31) error
	ArcTan(den, num qfmt.Q8_23) error
	Sinh(angle qfmt.Q31) error
	Cosh(angle qfmt.Q31) error
	Tanh(angle qfmt.Q31) error
	ArcTanh(den, num qfmt.Q8_23) error
	Sqrt(value qfmt.Q31) error

	IsBusy() bool

	ResultQ31() qfmt.Q31
	Result1Q30() qfmt.Q1_30
	Result20Q11() qfmt.Q20_11
	ParkResult() (id, iq qfmt.Q23)
}

var _ Accelerator = (*cordic.Unit)(nil)

// Console runs the operation menu over a text stream.
type Console struct {
	Verbose bool        // Set to enable verbose logging.
	Unit    Accelerator // The rotation engine under demonstration.

	out  io.Writer
	scan *bufio.Scanner
}

// New creates a console reading whitespace-delimited tokens from in and
// writing prompts and results to out.
func New(in io.Reader, out io.Writer, unit Accelerator) (con *Console) {
	con = &Console{
		Unit: unit,
		out:  out,
		scan: bufio.NewScanner(in),
	}
	con.scan.Split(bufio.ScanWords)

	return
}

// Run loops on the menu until the input stream ends. Every handler
// returns control to the menu; no input is fatal.
func (con *Console) Run() (err error) {
	// Clear screen
	fmt.Fprint(con.out, "\x1b[2J\x1b[;H")

	for {
		con.printMenu()

		token, ok := con.readToken()
		if !ok {
			err = con.scan.Err()
			return
		}

		selector, aerr := strconv.Atoi(token)
		if aerr != nil {
			selector = -1
		}

		function := Function(selector)
		if con.Verbose {
			log.Printf("console: selector %q", token)
		}

		switch function {
		case PARK_TRANS:
			con.parkTransform()
		case SINE:
			con.sine()
		case COSINE:
			con.cosine()
		case TAN:
			con.tangent()
		case ARC_TAN:
			con.arcTangent()
		case HYP_SINE:
			con.hyperbolicSine()
		case HYP_COSINE:
			con.hyperbolicCosine()
		case HYP_TAN:
			con.hyperbolicTangent()
		case HYP_ARC_TAN:
			con.hyperbolicArcTangent()
		case SQRT:
			con.squareRoot()
		default:
			// A value which is not present in the list.
			fmt.Fprint(con.out, f("Wrong option selected. Please try again... \n"))
		}

		fmt.Fprint(con.out, "\n\n")
	}
}

// printMenu prints the operation list.
func (con *Console) printMenu() {
	fmt.Fprint(con.out, f("********************* CORDIC ***************** \n"))
	fmt.Fprint(con.out, f("Please select the required operation from the list. \n"))
	for n, label := range functionLabel {
		fmt.Fprintf(con.out, "%d - %v \n", n, label)
	}
	fmt.Fprint(con.out, ">> \n")
}

// CheckRange reports success iff low <= value <= high, inclusive at
// both ends.
func CheckRange(low, high, value float64) (err error) {
	if low > value || high < value {
		err = ErrOutOfRange
	}

	return
}

// checkRange validates value against [low, high] and prints the
// diagnostic on failure.
func (con *Console) checkRange(low, high, value float64) (ok bool) {
	if CheckRange(low, high, value) != nil {
		fmt.Fprint(con.out, f("\nEntered number is not in range. \n"))
		return
	}

	ok = true
	return
}

// readToken reads one whitespace-delimited token, capped at TOKEN_LIMIT
// characters. A false return means end of input.
func (con *Console) readToken() (token string, ok bool) {
	if !con.scan.Scan() {
		return
	}

	token = con.scan.Text()
	if len(token) > TOKEN_LIMIT {
		token = token[:TOKEN_LIMIT]
	}

	ok = true
	return
}

// readFloat reads one numeric token, evaluating $(...) expressions.
// A parse failure short-circuits the handler, like a read failure.
func (con *Console) readFloat() (value float64, ok bool) {
	token, ok := con.readToken()
	if !ok {
		return
	}

	var err error
	if strings.HasPrefix(token, "$(") && strings.HasSuffix(token, ")") {
		value, err = evalExpr(token[2 : len(token)-1])
	} else {
		value, err = strconv.ParseFloat(token, 64)
	}

	if err != nil {
		if con.Verbose {
			log.Printf("console: %v", err)
		}
		value = 0
		ok = false
	}

	return
}

// await spins on the engine busy flag, as the firmware does.
func (con *Console) await() {
	for con.Unit.IsBusy() {
	}
}

// reportUnitErr prints a submit failure. Not reachable from the menu
// flow, which never leaves an operation pending.
func (con *Console) reportUnitErr(err error) {
	fmt.Fprint(con.out, f("\ncordic: %v \n", err))
}
