package dropped

import (
	"strconv"

	"github.com/WinPooh32/expected"
)

func parse(s string) expected.Result[int, error] {
	return expected.From(strconv.Atoi(s))
}

func weigh(s string) (expected.Result[int, error], bool) {
	return parse(s), s != ""
}

func report() {
	parse("1")

	go parse("2")

	defer parse("3")

	weigh("4")

	r := parse("5")
	_ = r

	_ = parse("6")

	println(len("7"))
}
