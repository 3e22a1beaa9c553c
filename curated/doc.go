// This file is part of GopherARM.
//
// GopherARM is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherARM is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherARM.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created by the
// Errorf() function. The Errorf() pattern is used to differentiate curated
// errors. For example:
//
//	n := 20
//	e := curated.Errorf("arm: coprocessor number out of range (%d)", n)
//
//	if curated.Is(e, "arm: coprocessor number out of range (%d)") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	e := curated.Errorf("memory: unmapped address (%08x)", addr)
//	f := curated.Errorf("arm: %v", e)
//
//	if curated.Has(f, "memory: unmapped address (%08x)") {
//		fmt.Println("true")
//	}
//
// Note that in this example a call to Is() with the inner pattern would not
// succeed for error f - the inner error is "wrapped" inside the pattern
// "arm: %v".
//
// The IsAny() function answers whether the error was created by
// curated.Errorf() at all. Put another way, it returns true if the error is
// 'curated' and false if the error is 'uncurated'. The distinction is useful
// when deciding whether an error is an expected part of the emulation's
// operation or something more surprising.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. The practical advantage of this is that it
// alleviates the problem of when and how to wrap errors as they pass up
// through the layers of the emulation.
package curated
