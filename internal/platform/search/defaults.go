package search

// DefaultDefinitions returns the common FHIR R4 search parameters that are
// pre-registered on startup: cross-resource parameters (prefixed with _),
// frequently used clinical parameters, and the Observation composite
// parameters whose components reference other definitions in this set by
// canonical URL.
func DefaultDefinitions() []*ParameterDefinition {
	return []*ParameterDefinition{
		// ---------------------------------------------------------------
		// Cross-resource (Resource / DomainResource) search parameters
		// ---------------------------------------------------------------
		{
			URL:         "http://hl7.org/fhir/SearchParameter/Resource-id",
			Name:        "ResourceId",
			Description: "Logical id of this artifact",
			Code:        "_id",
			Base:        []string{"Resource"},
			Type:        TypeToken,
			Expression:  "Resource.id",
		},
		{
			URL:         "http://hl7.org/fhir/SearchParameter/Resource-lastUpdated",
			Name:        "ResourceLastUpdated",
			Description: "When the resource version last changed",
			Code:        "_lastUpdated",
			Base:        []string{"Resource"},
			Type:        TypeDate,
			Expression:  "Resource.meta.lastUpdated",
		},
		{
			URL:         "http://hl7.org/fhir/SearchParameter/Resource-tag",
			Name:        "ResourceTag",
			Description: "Tags applied to this resource",
			Code:        "_tag",
			Base:        []string{"Resource"},
			Type:        TypeToken,
			Expression:  "Resource.meta.tag",
		},
		{
			URL:         "http://hl7.org/fhir/SearchParameter/Resource-profile",
			Name:        "ResourceProfile",
			Description: "Profiles this resource claims to conform to",
			Code:        "_profile",
			Base:        []string{"Resource"},
			Type:        TypeURI,
			Expression:  "Resource.meta.profile",
		},
		{
			URL:         "http://hl7.org/fhir/SearchParameter/Resource-source",
			Name:        "ResourceSource",
			Description: "Identifies where the resource comes from",
			Code:        "_source",
			Base:        []string{"Resource"},
			Type:        TypeURI,
			Expression:  "Resource.meta.source",
		},

		// ---------------------------------------------------------------
		// Patient search parameters
		// ---------------------------------------------------------------
		{
			URL:         "http://hl7.org/fhir/SearchParameter/Patient-name",
			Name:        "PatientName",
			Description: "A server defined search that may match any of the string fields in the HumanName",
			Code:        "name",
			Base:        []string{"Patient"},
			Type:        TypeString,
			Expression:  "Patient.name",
		},
		{
			URL:         "http://hl7.org/fhir/SearchParameter/Patient-family",
			Name:        "PatientFamily",
			Description: "A portion of the family name of the patient",
			Code:        "family",
			Base:        []string{"Patient"},
			Type:        TypeString,
			Expression:  "Patient.name.family",
		},
		{
			URL:         "http://hl7.org/fhir/SearchParameter/Patient-birthdate",
			Name:        "PatientBirthdate",
			Description: "The patient's date of birth",
			Code:        "birthdate",
			Base:        []string{"Patient"},
			Type:        TypeDate,
			Expression:  "Patient.birthDate",
		},
		{
			URL:         "http://hl7.org/fhir/SearchParameter/Patient-gender",
			Name:        "PatientGender",
			Description: "Gender of the patient",
			Code:        "gender",
			Base:        []string{"Patient"},
			Type:        TypeToken,
			Expression:  "Patient.gender",
		},
		{
			URL:         "http://hl7.org/fhir/SearchParameter/Patient-identifier",
			Name:        "PatientIdentifier",
			Description: "A patient identifier",
			Code:        "identifier",
			Base:        []string{"Patient"},
			Type:        TypeToken,
			Expression:  "Patient.identifier",
		},
		{
			URL:         "http://hl7.org/fhir/SearchParameter/Patient-general-practitioner",
			Name:        "PatientGeneralPractitioner",
			Description: "Patient's nominated general practitioner",
			Code:        "general-practitioner",
			Base:        []string{"Patient"},
			Type:        TypeReference,
			Expression:  "Patient.generalPractitioner",
			Target:      []string{"Organization", "Practitioner", "PractitionerRole"},
		},

		// ---------------------------------------------------------------
		// Observation search parameters
		// ---------------------------------------------------------------
		{
			URL:         "http://hl7.org/fhir/SearchParameter/clinical-code",
			Name:        "ObservationCode",
			Description: "The code of the observation type",
			Code:        "code",
			Base:        []string{"Observation"},
			Type:        TypeToken,
			Expression:  "Observation.code",
		},
		{
			URL:         "http://hl7.org/fhir/SearchParameter/clinical-patient",
			Name:        "ObservationPatient",
			Description: "The subject that the observation is about (if patient)",
			Code:        "patient",
			Base:        []string{"Observation"},
			Type:        TypeReference,
			Expression:  "Observation.subject.where(resolve() is Patient)",
			Target:      []string{"Patient"},
		},
		{
			URL:         "http://hl7.org/fhir/SearchParameter/clinical-date",
			Name:        "ObservationDate",
			Description: "Obtained date/time",
			Code:        "date",
			Base:        []string{"Observation"},
			Type:        TypeDate,
			Expression:  "Observation.effective",
		},
		{
			URL:         "http://hl7.org/fhir/SearchParameter/Observation-status",
			Name:        "ObservationStatus",
			Description: "The status of the observation",
			Code:        "status",
			Base:        []string{"Observation"},
			Type:        TypeToken,
			Expression:  "Observation.status",
		},
		{
			URL:         "http://hl7.org/fhir/SearchParameter/Observation-value-quantity",
			Name:        "ObservationValueQuantity",
			Description: "The value of the observation, if the value is a Quantity",
			Code:        "value-quantity",
			Base:        []string{"Observation"},
			Type:        TypeQuantity,
			Expression:  "(Observation.value as Quantity)",
		},
		{
			URL:         "http://hl7.org/fhir/SearchParameter/Observation-value-concept",
			Name:        "ObservationValueConcept",
			Description: "The value of the observation, if the value is a CodeableConcept",
			Code:        "value-concept",
			Base:        []string{"Observation"},
			Type:        TypeToken,
			Expression:  "(Observation.value as CodeableConcept)",
		},
		{
			URL:         "http://hl7.org/fhir/SearchParameter/Observation-value-date",
			Name:        "ObservationValueDate",
			Description: "The value of the observation, if the value is a date or period",
			Code:        "value-date",
			Base:        []string{"Observation"},
			Type:        TypeDate,
			Expression:  "(Observation.value as dateTime) | (Observation.value as Period)",
		},
		{
			URL:         "http://hl7.org/fhir/SearchParameter/Observation-value-string",
			Name:        "ObservationValueString",
			Description: "The value of the observation, if the value is a string",
			Code:        "value-string",
			Base:        []string{"Observation"},
			Type:        TypeString,
			Expression:  "(Observation.value as string)",
		},

		// ---------------------------------------------------------------
		// Observation composite search parameters. Components reference
		// the scalar definitions above by canonical URL.
		// ---------------------------------------------------------------
		{
			URL:         "http://hl7.org/fhir/SearchParameter/Observation-code-value-quantity",
			Name:        "ObservationCodeValueQuantity",
			Description: "Code and quantity value parameter pair",
			Code:        "code-value-quantity",
			Base:        []string{"Observation"},
			Type:        TypeComposite,
			Component: []ComponentDefinition{
				{Definition: "http://hl7.org/fhir/SearchParameter/clinical-code", Expression: "code"},
				{Definition: "http://hl7.org/fhir/SearchParameter/Observation-value-quantity", Expression: "value.as(Quantity)"},
			},
		},
		{
			URL:         "http://hl7.org/fhir/SearchParameter/Observation-code-value-concept",
			Name:        "ObservationCodeValueConcept",
			Description: "Code and coded value parameter pair",
			Code:        "code-value-concept",
			Base:        []string{"Observation"},
			Type:        TypeComposite,
			Component: []ComponentDefinition{
				{Definition: "http://hl7.org/fhir/SearchParameter/clinical-code", Expression: "code"},
				{Definition: "http://hl7.org/fhir/SearchParameter/Observation-value-concept", Expression: "value.as(CodeableConcept)"},
			},
		},
		{
			URL:         "http://hl7.org/fhir/SearchParameter/Observation-code-value-date",
			Name:        "ObservationCodeValueDate",
			Description: "Code and date/time value parameter pair",
			Code:        "code-value-date",
			Base:        []string{"Observation"},
			Type:        TypeComposite,
			Component: []ComponentDefinition{
				{Definition: "http://hl7.org/fhir/SearchParameter/clinical-code", Expression: "code"},
				{Definition: "http://hl7.org/fhir/SearchParameter/Observation-value-date", Expression: "value.as(DateTime)"},
			},
		},
		{
			URL:         "http://hl7.org/fhir/SearchParameter/Observation-code-value-string",
			Name:        "ObservationCodeValueString",
			Description: "Code and string value parameter pair",
			Code:        "code-value-string",
			Base:        []string{"Observation"},
			Type:        TypeComposite,
			Component: []ComponentDefinition{
				{Definition: "http://hl7.org/fhir/SearchParameter/clinical-code", Expression: "code"},
				{Definition: "http://hl7.org/fhir/SearchParameter/Observation-value-string", Expression: "value.as(string)"},
			},
		},

		// ---------------------------------------------------------------
		// Encounter / Condition search parameters
		// ---------------------------------------------------------------
		{
			URL:         "http://hl7.org/fhir/SearchParameter/Encounter-status",
			Name:        "EncounterStatus",
			Description: "Status of the encounter",
			Code:        "status",
			Base:        []string{"Encounter"},
			Type:        TypeToken,
			Expression:  "Encounter.status",
		},
		{
			URL:         "http://hl7.org/fhir/SearchParameter/Condition-clinical-status",
			Name:        "ConditionClinicalStatus",
			Description: "The clinical status of the condition",
			Code:        "clinical-status",
			Base:        []string{"Condition"},
			Type:        TypeToken,
			Expression:  "Condition.clinicalStatus",
		},
	}
}
