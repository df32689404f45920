package entities

// Display returns the human-readable label for a case status
func (s CaseStatus) Display() string {
	switch s {
	case CaseStatusOpen:
		return "Open"
	case CaseStatusSettled:
		return "Settled"
	case CaseStatusDropped:
		return "Dropped"
	case CaseStatusTrial:
		return "Trial"
	case CaseStatusClosed:
		return "Closed"
	default:
		return string(s)
	}
}

// Display returns the human-readable label for an incident type
func (t IncidentType) Display() string {
	switch t {
	case IncidentTypeAuto:
		return "Auto Accident"
	case IncidentTypeSlipFall:
		return "Slip & Fall"
	case IncidentTypeMedicalMalpractice:
		return "Medical Malpractice"
	case IncidentTypeProductLiability:
		return "Product Liability"
	case IncidentTypeWorkplace:
		return "Workplace Injury"
	case IncidentTypeOther:
		return "Other"
	default:
		return string(t)
	}
}

// Display returns the human-readable label for a coverage type
func (c CoverageType) Display() string {
	switch c {
	case CoverageTypeLiability:
		return "Liability"
	case CoverageTypeUninsuredMotorist:
		return "Uninsured Motorist"
	case CoverageTypeMedicalPayments:
		return "Medical Payments"
	case CoverageTypeHealth:
		return "Health"
	case CoverageTypeWorkersComp:
		return "Workers Compensation"
	case CoverageTypeOther:
		return "Other"
	default:
		return string(c)
	}
}

// Display returns the human-readable label for a damage category
func (c DamageCategory) Display() string {
	switch c {
	case DamageCategoryMedical:
		return "Medical Expenses"
	case DamageCategoryLostWages:
		return "Lost Wages"
	case DamageCategoryPainSuffering:
		return "Pain & Suffering"
	case DamageCategoryProperty:
		return "Property Damage"
	case DamageCategoryFutureMedical:
		return "Future Medical Expenses"
	case DamageCategoryFutureLostWages:
		return "Future Lost Wages"
	case DamageCategoryOther:
		return "Other"
	default:
		return string(c)
	}
}

// Display returns the human-readable label for a communication channel
func (c ChannelType) Display() string {
	switch c {
	case ChannelTypePhone:
		return "Phone Call"
	case ChannelTypeInPerson:
		return "In Person"
	case ChannelTypeEmail:
		return "Email"
	case ChannelTypeText:
		return "Text Message"
	case ChannelTypePortal:
		return "Client Portal"
	default:
		return string(c)
	}
}
