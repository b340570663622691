package cronexpr

// View is the flat, serializable form of a State used by the CLI and by
// state files.
type View struct {
	Expression  string `json:"expression" yaml:"expression"`
	Mode        string `json:"mode" yaml:"mode"`
	AllMonths   bool   `json:"all_months" yaml:"all_months"`
	Months      []int  `json:"months,omitempty" yaml:"months,omitempty"`
	DaysOfMonth []int  `json:"days_of_month,omitempty" yaml:"days_of_month,omitempty"`
	AllWeekdays bool   `json:"all_weekdays,omitempty" yaml:"all_weekdays,omitempty"`
	Weekdays    []int  `json:"weekdays,omitempty" yaml:"weekdays,omitempty"`
	Summary     string `json:"summary" yaml:"summary"`
	Valid       bool   `json:"valid" yaml:"valid"`
	Error       string `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewView describes s.
func NewView(s State) View {
	v := View{
		Expression: Serialize(s),
		Mode:       s.Mode().String(),
		AllMonths:  s.Months.IsAll(),
		Months:     s.Months.Values(),
		Summary:    Describe(s),
		Valid:      true,
	}
	switch s.Mode() {
	case ModeEveryDay:
		v.AllWeekdays = s.Weekdays().IsAll()
		v.Weekdays = s.Weekdays().Values()
	case ModeSpecificDays:
		v.DaysOfMonth = s.DaysOfMonth()
	}
	if err := Validate(s); err != nil {
		v.Valid = false
		v.Error = err.Error()
	}
	return v
}

// State rebuilds the structured state from the view's selection fields.
// Missing months or weekdays read as unrestricted and values outside a
// field's domain are dropped. Expression, Summary, Valid and Error are
// ignored.
func (v View) State() (State, error) {
	mode := ModeEveryDay
	if v.Mode != "" {
		m, err := ParseMode(v.Mode)
		if err != nil {
			return State{}, err
		}
		mode = m
	}

	s := State{Months: All()}
	if !v.AllMonths && len(v.Months) > 0 {
		s.Months = Explicit(within(v.Months, MinMonth, MaxMonth)...)
	}

	switch mode {
	case ModeLastDayOfMonth:
		s.Day = LastDayOfMonth{}
	case ModeSpecificDays:
		s.Day = SpecificDays{Days: within(v.DaysOfMonth, MinDayOfMonth, MaxDayOfMonth)}
	default:
		weekdays := All()
		if !v.AllWeekdays && len(v.Weekdays) > 0 {
			weekdays = Explicit(within(v.Weekdays, MinDayOfWeek, MaxDayOfWeek)...)
		}
		s.Day = EveryDay{Weekdays: weekdays}
	}
	return s, nil
}
