package cardutils

// Standardize splits a user-typed expiration date such as "05/2020" into a
// two-digit month and a year. Non-digits are dropped first, then:
//
//	0 digits   -> ("", "")
//	1-2 digits -> month only; a single digit is zero-padded ("5" -> "05")
//	3-5 digits -> first two are the month, the rest the year ("1225" -> "12", "25")
//	6+ digits  -> first two are the month, the year starts at offset 4 ("052020" -> "05", "20")
//
// Five digits fall in the 3-5 range and keep a three digit year.
func Standardize(expirationDate string) (month, year string) {
	digits := RemoveNonDigits(expirationDate)

	switch n := len(digits); {
	case n == 0:
		return "", ""
	case n <= 2:
		if n == 1 {
			return "0" + digits, ""
		}
		return digits, ""
	case n <= 5:
		return digits[:2], digits[2:]
	default:
		return digits[:2], digits[4:]
	}
}
