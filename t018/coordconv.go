package t018

import "github.com/tzneal/coordconv"

/*------------------------------------------------------------------
 *
 * Purpose:	Hemisphere rune conversion between this package's
 *		Position type and github.com/tzneal/coordconv, adapted
 *		from the teacher's own coordconv.go helper (there it
 *		bridged an AX.25 hemisphere rune; here it bridges the
 *		UTM hemisphere cmd/t018inspect prints).
 *
 *------------------------------------------------------------------*/

// HemisphereRune converts a coordconv.Hemisphere to its conventional
// display rune, for cmd/t018inspect's UTM readout. The switch mirrors
// the teacher's case-for-case: North, South and Invalid each get a
// rune and any other value maps to '?', so there is no further domain
// logic to rework here, just the rename to this package's naming.
func HemisphereRune(h coordconv.Hemisphere) rune {
	switch h {
	case coordconv.HemisphereNorth:
		return 'N'
	case coordconv.HemisphereSouth:
		return 'S'
	case coordconv.HemisphereInvalid:
		return '!'
	default:
		return '?'
	}
}
