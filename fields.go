package cocoacanvas

// KeyFields is the fixed vocabulary reported by the key fields
// analysis, in report order. Names absent from an export's header
// are skipped. The list follows the Contra Costa County layout.
var KeyFields = []string{
	// Identity
	"RegistrationNumber", "VoterID", "VoterTitle",
	"LastName", "FirstName", "MiddleName", "NameSuffix", "Gender",

	// Residence address
	"ResidenceCity", "ResidenceZipCode",
	"HouseNumber", "PreDirection", "StreetName", "StreetSuffix",
	"PostDirection", "UnitAbbr", "UnitNumber",

	// Mailing address
	"MailAddress1", "MailAddress2", "MailAddress3", "MailAddress4",
	"MailCity", "MailState", "MailZip",

	// Contact
	"PhoneNumber", "EmailAddress",

	// Registration
	"RegistrationDate", "BirthDate", "BirthPlace",
	"PartyName", "PartyAbbr", "Language",
	"VBMProgramStatus", "StatusReason",

	// Precinct
	"PrecinctID", "PrecinctPortion", "PrecinctName",
}
