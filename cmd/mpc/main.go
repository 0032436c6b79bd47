// Command mpc is a tiny demo binary: it evaluates a maths expression
// given on the command line using the worked example in
// github.com/fgeorgatos/mpc/examples/maths, printing the result or the
// parser's own error message.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fgeorgatos/mpc/examples/maths"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: mpc <expression>")
		os.Exit(1)
	}

	expr := strings.Join(os.Args[1:], "")

	v, err := maths.Eval(expr)
	if err != nil {
		fmt.Println("err:", err)
		os.Exit(1)
	}

	fmt.Println(v)
}
