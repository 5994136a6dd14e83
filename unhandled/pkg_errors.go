package unhandled

import (
	"errors"
	"fmt"

	"golang.org/x/tools/go/packages"
)

type pkgerrs []*packages.Package

func (pkgs *pkgerrs) Error() string {
	var errs []error

	for _, pkg := range *pkgs {
		perrs := make([]error, 0, len(pkg.Errors)+len(pkg.TypeErrors))

		for _, err := range pkg.Errors {
			perrs = append(perrs, err)
		}

		for _, err := range pkg.TypeErrors {
			perrs = append(perrs, err)
		}

		errs = append(errs, fmt.Errorf("package %s: %w", pkg.PkgPath, errors.Join(perrs...)))
	}

	return errors.Join(errs...).Error()
}
