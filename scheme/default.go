package scheme

const madaBINs = `440647|440795|446404|457865|968208|588845|417633|468540|468541|468542|468543|` +
	`968201|446393|588847|400861|409201|458456|484783|968205|462220|455708|588848|455036|` +
	`968203|486094|486095|486096|504300|440533|489317|489318|489319|445564|968211|401757|` +
	`410685|432328|428671|428672|428673|968206|446672|543357|434107|431361|604906|521076|` +
	`588850|968202|535825|529415|543085|524130|554180|549760|588849|968209|524514|529741|` +
	`537767|535989|536023|513213|585265|588983|588982|589005|508160|531095|530906|532013|` +
	`588851|605141|968204|422817|422818|422819|410834|428331|483010|483011|483012|589206|` +
	`968207|419593|439954|407520|530060|531196|420132|242030|406136|406996|407197|407395|412565`

var defaultTable = mustDefaultTable()

// Default returns the built-in scheme table.
func Default() *Table {
	return defaultTable
}

func mustDefaultTable() *Table {
	t, err := NewTable(
		Metadata{
			Scheme:     Unknown,
			CardGaps:   []int{4, 8, 12},
			CVVLengths: []int{3, 4},
		},
		Metadata{
			Scheme:                Mada,
			CardGaps:              []int{4, 8, 12},
			CVVLengths:            []int{3},
			FullCardNumberPattern: mustCompilePattern(`(` + madaBINs + `)\d{10}`),
		},
		Metadata{
			Scheme:                Visa,
			CardGaps:              []int{4, 8, 12},
			CVVLengths:            []int{3},
			FullCardNumberPattern: mustCompilePattern(`4\d{12}(\d{3})?`),
		},
		Metadata{
			Scheme:                Mastercard,
			CardGaps:              []int{4, 8, 12},
			CVVLengths:            []int{3},
			FullCardNumberPattern: mustCompilePattern(`(5[1-5]\d{4}|222[1-9]\d{2}|22[3-9]\d{3}|2[3-6]\d{4}|27[01]\d{3}|2720\d{2})\d{10}`),
		},
		Metadata{
			Scheme:                Maestro,
			CardGaps:              []int{4, 8, 12},
			CVVLengths:            []int{3},
			FullCardNumberPattern: mustCompilePattern(`(5018|5020|5038|6304|6759|676[1-3])\d{8,15}`),
		},
		Metadata{
			Scheme:                AmericanExpress,
			CardGaps:              []int{4, 10},
			CVVLengths:            []int{4},
			FullCardNumberPattern: mustCompilePattern(`3[47]\d{13}`),
		},
		Metadata{
			Scheme:                Discover,
			CardGaps:              []int{4, 8, 12},
			CVVLengths:            []int{3},
			FullCardNumberPattern: mustCompilePattern(`(6011|65\d{2}|64[4-9]\d)\d{12}`),
		},
		Metadata{
			Scheme:                DinersClub,
			CardGaps:              []int{4, 10},
			CVVLengths:            []int{3},
			FullCardNumberPattern: mustCompilePattern(`3(0[0-5]|[68]\d)\d{11}`),
		},
		Metadata{
			Scheme:                JCB,
			CardGaps:              []int{4, 8, 12},
			CVVLengths:            []int{3},
			FullCardNumberPattern: mustCompilePattern(`35(2[89]|[3-8]\d)\d{12}`),
		},
	)
	if err != nil {
		panic(err)
	}
	return t
}
