package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/pflag"
)

// connFlag is a pflag.Value accepting only 4 or 8.
type connFlag int

var _ pflag.Value = (*connFlag)(nil)

func (c *connFlag) String() string {
	if *c == 0 {
		return "4"
	}
	return strconv.Itoa(int(*c))
}

func (c *connFlag) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || (n != 4 && n != 8) {
		return fmt.Errorf("connectivity must be 4 or 8, got %q", s)
	}
	*c = connFlag(n)
	return nil
}

func (c *connFlag) Type() string { return "connectivity" }
