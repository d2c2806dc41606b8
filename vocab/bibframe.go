package vocab

// Bibframe types
const (
	BfAnnotation         = BF + "Annotation"
	BfArchival           = BF + "Archival"
	BfAuthority          = BF + "Authority"
	BfCategory           = BF + "Category"
	BfClassification     = BF + "Classification"
	BfCollection         = BF + "Collection"
	BfCoverArt           = BF + "CoverArt"
	BfEvent              = BF + "Event"
	BfFamily             = BF + "Family"
	BfHeldItem           = BF + "HeldItem"
	BfIdentifier         = BF + "Identifier"
	BfInstance           = BF + "Instance"
	BfIntegrating        = BF + "Integrating"
	BfJurisdiction       = BF + "Jurisdiction"
	BfLanguage           = BF + "Language"
	BfManuscript         = BF + "Manuscript"
	BfMeeting            = BF + "Meeting"
	BfMonograph          = BF + "Monograph"
	BfMultipartMonograph = BF + "MultipartMonograph"
	BfOrganization       = BF + "Organization"
	BfPerson             = BF + "Person"
	BfPlace              = BF + "Place"
	BfProvider           = BF + "Provider"
	BfReview             = BF + "Review"
	BfSerial             = BF + "Serial"
	BfSummary            = BF + "Summary"
	BfTableOfContents    = BF + "TableOfContents"
	BfTemporal           = BF + "Temporal"
	BfTitle              = BF + "Title"
	BfTopic              = BF + "Topic"
	BfWork               = BF + "Work"
)

// Bibframe properties
const (
	BfAnnotates             = BF + "annotates"
	BfAnnotationAssertedBy  = BF + "annotationAssertedBy"
	BfAnnotationBody        = BF + "annotationBody"
	BfAnnotationSource      = BF + "annotationSource"
	BfAssertionDate         = BF + "assertionDate"
	BfAuthoritySource       = BF + "authoritySource"
	BfAuthorizedAccessPoint = BF + "authorizedAccessPoint"
	BfBarcode               = BF + "barcode"
	BfContributor           = BF + "contributor"
	BfCreator               = BF + "creator"
	BfDerivedFrom           = BF + "derivedFrom"
	BfDistribution          = BF + "distribution"
	BfEventDate             = BF + "eventDate"
	BfEventPlace            = BF + "eventPlace"
	BfHasAuthority          = BF + "hasAuthority"
	BfHoldingFor            = BF + "holdingFor"
	BfIdentifierProp        = BF + "identifier"
	BfIdentifierScheme      = BF + "identifierScheme"
	BfIdentifierValue       = BF + "identifierValue"
	BfInstanceOf            = BF + "instanceOf"
	BfInstanceTitle         = BF + "instanceTitle"
	BfLabel                 = BF + "label"
	BfLanguageProp          = BF + "language"
	BfLanguageOfPart        = BF + "languageOfPart"
	BfLanguageOfPartURI     = BF + "languageOfPartUri"
	BfManufacture           = BF + "manufacture"
	BfModeOfIssuance        = BF + "modeOfIssuance"
	BfProduction            = BF + "production"
	BfProviderProp          = BF + "provider"
	BfProviderDate          = BF + "providerDate"
	BfProviderName          = BF + "providerName"
	BfProviderPlace         = BF + "providerPlace"
	BfPublication           = BF + "publication"
	BfReviewProp            = BF + "review"
	BfReviewOf              = BF + "reviewOf"
	BfShelfMark             = BF + "shelfMark"
	BfShelfMarkDdc          = BF + "shelfMarkDdc"
	BfShelfMarkLcc          = BF + "shelfMarkLcc"
	BfShelfMarkNlm          = BF + "shelfMarkNlm"
	BfShelfMarkUdc          = BF + "shelfMarkUdc"
	BfSubtitle              = BF + "subtitle"
	BfSummaryProp           = BF + "summary"
	BfSummaryOf             = BF + "summaryOf"
	BfSystemNumber          = BF + "systemNumber"
	BfTitleProp             = BF + "title"
	BfTitleStatement        = BF + "titleStatement"
	BfTitleValue            = BF + "titleValue"
	BfTitleVariation        = BF + "titleVariation"
	BfWorkTitle             = BF + "workTitle"
)

// Relator properties linking a Work to an agent.
const (
	RelatorAuthor    = Relators + "aut"
	RelatorComposer  = Relators + "cmp"
	RelatorConductor = Relators + "cnd"
	RelatorEditor    = Relators + "edt"
	RelatorNarrator  = Relators + "nrt"
	RelatorPerformer = Relators + "prf"
)

// AgentTypes lists the Bibframe agent types.
var AgentTypes = []string{BfPerson, BfFamily, BfOrganization, BfMeeting, BfJurisdiction}

// AuthorityProperties relate an entity to its authority record.
var AuthorityProperties = []string{BfAuthoritySource, BfHasAuthority, BfAuthorizedAccessPoint}

// TitleProperties link a Work or Instance to a bf:Title.
var TitleProperties = []string{BfWorkTitle, BfInstanceTitle, BfTitleVariation, BfTitleProp}

// ProviderProperties link an Instance to a bf:Provider.
var ProviderProperties = []string{BfPublication, BfDistribution, BfManufacture, BfProduction, BfProviderProp}

// ContributorProperties link a Work to an agent that becomes an
// ld4l:Contribution.
var ContributorProperties = []string{
	BfCreator, BfContributor,
	RelatorAuthor, RelatorComposer, RelatorConductor, RelatorEditor, RelatorNarrator, RelatorPerformer,
}

// AnnotationTypes lists bf:Annotation and its subtypes.
var AnnotationTypes = []string{BfAnnotation, BfReview, BfSummary, BfTableOfContents, BfCoverArt}
