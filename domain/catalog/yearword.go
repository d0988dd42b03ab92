package catalog

// YearWord returns the Russian plural form of "год" for the given age.
// Total over non-negative ages: 11-19 by the last two digits always take
// "лет", otherwise the last digit picks the form.
func YearWord(age int) string {
	lastTwo := age % 100
	if lastTwo >= 11 && lastTwo <= 19 {
		return "лет"
	}
	switch age % 10 {
	case 1:
		return "год"
	case 2, 3, 4:
		return "года"
	default:
		return "лет"
	}
}
