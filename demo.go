package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/heshanpadmasiri/valueops/fraction"
	"github.com/heshanpadmasiri/valueops/rectangle"
)

// catchInvalidArgument prints rectangle validation failures instead of
// returning them. Any other error is returned unchanged.
func catchInvalidArgument(w io.Writer, demo func() error) error {
	err := demo()
	if errors.Is(err, rectangle.ErrInvalidArgument) {
		_, err = fmt.Fprintln(w, err)
	}
	return err
}

func rectangleDemo(w io.Writer) error {
	return catchInvalidArgument(w, func() error {
		rect1, err := rectangle.New(2, 4)
		if err != nil {
			return err
		}
		rect2, err := rectangle.New(3, 6)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, rect1)
		fmt.Fprintln(w, rect2)

		sum, err := rect1.Add(rect2)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, sum)

		n := 3
		scaled, err := rect1.Scale(float64(n))
		if err != nil {
			return err
		}
		fmt.Fprintln(w, scaled)

		reversed, err := rectangle.Times(2, rect1)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, reversed)

		fmt.Fprintln(w, rect1.Less(rect2))
		fmt.Fprintln(w, rect1.Equal(rect2))

		rect3, err := rectangle.New(1, 8)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, rect1.Equal(rect3))
		return nil
	})
}

// fractionDemo does not catch anything: construction failures are returned
// to the caller.
func fractionDemo(w io.Writer) error {
	f1, err := fraction.New(1, 2)
	if err != nil {
		return err
	}
	f2, err := fraction.New(3, 4)
	if err != nil {
		return err
	}
	f3, err := fraction.New(2, 4)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, f1)
	fmt.Fprintln(w, f2)
	fmt.Fprintln(w, f3)

	fmt.Fprintln(w, f1.Add(f2))
	fmt.Fprintln(w, f2.Sub(f1))
	fmt.Fprintln(w, f1.Mul(f2))

	fmt.Fprintln(w, f1.Equal(f3))
	fmt.Fprintln(w, f1.Less(f2))

	fmt.Fprintln(w, f1.Mul(fraction.Int(2)))
	return nil
}

var demos = map[string]func(io.Writer) error{
	"rectangle": rectangleDemo,
	"fraction":  fractionDemo,
}

func runDemo(name string, w io.Writer) error {
	if name == "all" {
		for _, each := range []string{"rectangle", "fraction"} {
			if err := runDemo(each, w); err != nil {
				return err
			}
		}
		return nil
	}
	demo, ok := demos[name]
	if !ok {
		return fmt.Errorf("unknown demo %q (expected rectangle, fraction or all)", name)
	}
	return demo(w)
}
