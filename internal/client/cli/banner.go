package cli

import (
	"fmt"
	"io"

	"github.com/common-nighthawk/go-figure"
)

const appName = "kitchenkeeper"

func printBanner(w io.Writer) {
	fig := figure.NewFigure(appName, "cybermedium", true)
	fmt.Fprintln(w, fig.String())
	fmt.Fprintln(w, "Welcome to kitchenkeeper (type 'help' for commands)")
}
