// This file is part of PiGUS.
//
// PiGUS is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// PiGUS is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with PiGUS.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. The pattern is what differentiates one curated error from
// another. Packages usually declare their patterns as constants:
//
//	const LinkError = "psram: link: %v"
//
//	e := curated.Errorf(LinkError, err)
//
//	if curated.Is(e, LinkError) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	e := curated.Errorf(LinkError, err)
//	f := curated.Errorf("card: %v", e)
//
//	if curated.Has(f, LinkError) {
//		fmt.Println("true")
//	}
//
// The call to Is(f, LinkError) in this example would return false because
// error f was created with the pattern "card: %v".
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). Put another way, it returns true if the error is
// 'expected' and false if the error is 'unexpected'.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. For example:
//
//	e := curated.Errorf("psram: %v", curated.Errorf("psram: reset failed"))
//	fmt.Println(e)
//
// Will print "psram: reset failed" and not "psram: psram: reset failed".
//
// Curated errors also implement Unwrap() so that errors.Is() and errors.As()
// from the standard library see any uncurated error passed as a value.
package curated
