package vocab

// DefaultPropertyMap renames Bibframe properties that need no special
// handling. Properties a converter restructures, such as creators and
// shelf marks, must not appear here.
var DefaultPropertyMap = map[string]string{
	BF + "absorbed":                 Ld4lHasAbsorbed,
	BF + "absorbedBy":               Ld4lAbsorbedBy,
	BfAnnotates:                     OAHasTarget,
	BfAnnotationAssertedBy:          OAAnnotatedBy,
	BfAnnotationBody:                OAHasBody,
	BfAnnotationSource:              DCTerms + "creator",
	BfAssertionDate:                 OAAnnotatedAt,
	BfBarcode:                       Ld4lBarcode,
	BF + "continuedBy":              Ld4lContinuedBy,
	BF + "continues":                Ld4lContinues,
	BF + "dimensions":               Ld4lDimensions,
	BfEventDate:                     Ld4lDate,
	BfEventPlace:                    Ld4lHasLocation,
	BF + "expressionOf":             Ld4lIsExpressionOf,
	BF + "extent":                   Ld4lExtent,
	BF + "findingAid":               Ld4lHasFindingAid,
	BF + "formDesignation":          LegacyFormDesignation,
	BF + "genre":                    Ld4lHasGenre,
	BF + "hasAnnotation":            Ld4lHasAnnotation,
	BfHasAuthority:                  MadsIsIdentifiedByAuthority,
	BF + "hasExpression":            Ld4lHasExpression,
	BF + "hasOtherEdition":          Ld4lHasOtherEdition,
	BF + "hasPart":                  Ld4lHasPart,
	BfHoldingFor:                    Ld4lIsHoldingFor,
	BF + "illustrationNote":         Ld4lIllustrationNote,
	BfInstanceOf:                    Ld4lIsInstanceOf,
	BfInstanceTitle:                 Ld4lHasTitle,
	BF + "itemId":                   Ld4lIdentifiedBy,
	BfLabel:                         RDFSLabel,
	BF + "musicKey":                 LegacyMusicKey,
	BF + "originalVersion":          Ld4lHasOriginalVersion,
	BF + "partOf":                   Ld4lIsPartOf,
	BF + "precededBy":               Ld4lFollows,
	BfProviderDate:                  Ld4lDate,
	BfProviderName:                  Ld4lHasAgent,
	BfProviderPlace:                 Ld4lAtLocation,
	BF + "providerRole":             LegacyProviderRole,
	BF + "providerStatement":        LegacyProviderStatement,
	BF + "relatedInstance":          Ld4lRelated,
	BF + "relatedResource":          Ld4lRelated,
	BF + "relatedWork":              Ld4lRelated,
	BF + "relator":                  Ld4lHasContribution,
	BF + "reproduction":             Ld4lHasReproduction,
	BfReviewProp:                    OAHasBody,
	BfReviewOf:                      OAHasTarget,
	BF + "separatedFrom":            Ld4lSeparatedFrom,
	BF + "subject":                  Ld4lHasSubject,
	BF + "succeededBy":              Ld4lPrecedes,
	BfSummaryProp:                   OAHasBody,
	BfSummaryOf:                     OAHasTarget,
	BF + "supersededBy":             Ld4lSupersededBy,
	BF + "supersedes":               Ld4lSupersedes,
	BF + "supplement":               Ld4lHasSupplement,
	BF + "supplementTo":             Ld4lSupplements,
	BF + "supplementaryContentNote": LegacySupplementaryContentNote,
	BF + "titleType":                LegacyTitleType,
	BfTitleVariation:                Ld4lHasTitle,
	BF + "titleVariationDate":       Ld4lDate,
	BF + "translation":              Ld4lTranslatedAs,
	BF + "translationOf":            Ld4lTranslates,
	BF + "uri":                      OWLSameAs,
	BF + "urn":                      OWLSameAs,
	BfWorkTitle:                     Ld4lHasTitle,
}

// IdentifierTypes maps the bf:identifier sub-properties to LD4L identifier
// types.
var IdentifierTypes = map[string]string{
	BF + "ansi":                   LD4L + "Ansi",
	BF + "coden":                  LD4L + "Coden",
	BF + "dissertationIdentifier": LD4L + "DissertationIdentifier",
	BF + "doi":                    LD4L + "Doi",
	BF + "ean":                    LD4L + "Ean",
	BF + "fingerprint":            LD4L + "Fingerprint",
	BF + "hdl":                    LD4L + "Hdl",
	BF + "isan":                   LD4L + "Isan",
	BF + "isbn":                   LD4L + "Isbn",
	BF + "isbn10":                 LD4L + "Isbn10",
	BF + "isbn13":                 LD4L + "Isbn13",
	BF + "ismn":                   LD4L + "Ismn",
	BF + "iso":                    LD4L + "Iso",
	BF + "isrc":                   LD4L + "Isrc",
	BF + "issn":                   LD4L + "Issn",
	BF + "issnL":                  LD4L + "IssnL",
	BF + "issueNumber":            LD4L + "IssueNumber",
	BF + "istc":                   LD4L + "Istc",
	BF + "iswc":                   LD4L + "Iswc",
	BF + "lcOverseasAcq":          LD4L + "LcOverseasAcqNumber",
	BF + "lccn":                   LD4L + "Lccn",
	BF + "legalDeposit":           LD4L + "LegalDepositNumber",
	BF + "local":                  Ld4lLocalIlsIdentifier,
	BF + "matrixNumber":           LD4L + "MatrixNumber",
	BF + "musicPlate":             LD4L + "MusicPlateNumber",
	BF + "musicPublisherNumber":   LD4L + "MusicPublisherNumber",
	BF + "nban":                   LD4L + "Nban",
	BF + "nbn":                    LD4L + "Nbn",
	BF + "postalRegistration":     LD4L + "PostalRegistrationNumber",
	BF + "publisherNumber":        LD4L + "PublisherNumber",
	BF + "reportNumber":           LD4L + "TechnicalReportNumber",
	BF + "sici":                   LD4L + "Sici",
	BF + "stockNumber":            LD4L + "StockNumber",
	BF + "strn":                   LD4L + "Strn",
	BF + "studyNumber":            LD4L + "StudyNumber",
	BF + "upc":                    LD4L + "Upc",
	BF + "videorecordingNumber":   LD4L + "VideoRecordingNumber",
}

// IsIdentifierProperty reports whether p links a resource to a bf:Identifier.
func IsIdentifierProperty(p string) bool {
	if p == BfIdentifierProp || p == BfSystemNumber {
		return true
	}
	_, ok := IdentifierTypes[p]
	return ok
}

// IdentifierPrefixes maps the parenthesized prefix of an identifier value to
// an LD4L identifier type.
var IdentifierPrefixes = map[string]string{
	"OCoLC":   Ld4lOclcIdentifier,
	"OCoLC-I": Ld4lOclcIdentifier,
	"OCoLC-M": Ld4lOclcIdentifier,
}

// InstanceSubtypes are Bibframe Instance subtypes that LD4L asserts on the
// related Work.
var InstanceSubtypes = map[string]string{
	BfCollection:         Ld4lCollection,
	BfIntegrating:        Ld4lIntegrating,
	BfMonograph:          Ld4lMonograph,
	BfMultipartMonograph: Ld4lMultipartMonograph,
	BfSerial:             Ld4lSerial,
}

// IssuanceTypes maps normalized bf:modeOfIssuance values to Work types.
var IssuanceTypes = map[string]string{
	"collection":           Ld4lCollection,
	"integrating resource": Ld4lIntegrating,
	"integrating":          Ld4lIntegrating,
	"monograph":            Ld4lMonograph,
	"monographic":          Ld4lMonograph,
	"single unit":          Ld4lMonograph,
	"multipart monograph":  Ld4lMultipartMonograph,
	"serial":               Ld4lSerial,
}

// ProvisionTypes maps the property linking an Instance to a bf:Provider to
// the LD4L provision type.
var ProvisionTypes = map[string]string{
	BfPublication:  Ld4lPublisherProvision,
	BfDistribution: Ld4lDistributorProvision,
	BfManufacture:  Ld4lManufacturerProvision,
	BfProduction:   Ld4lProducerProvision,
	BfProviderProp: Ld4lProvision,
}

// ContributionTypes maps a Work-to-agent property to the contribution type.
var ContributionTypes = map[string]string{
	BfCreator:        Ld4lContribution,
	BfContributor:    Ld4lContribution,
	RelatorAuthor:    LD4L + "AuthorContribution",
	RelatorComposer:  LD4L + "ComposerContribution",
	RelatorConductor: LD4L + "ConductorContribution",
	RelatorEditor:    LD4L + "EditorContribution",
	RelatorNarrator:  LD4L + "NarratorContribution",
	RelatorPerformer: LD4L + "PerformerContribution",
}

// ShelfMarkTypes maps bf:shelfMark properties to LD4L shelf mark types.
var ShelfMarkTypes = map[string]string{
	BfShelfMark:    Ld4lShelfMark,
	BfShelfMarkDdc: Ld4lDdcShelfMark,
	BfShelfMarkLcc: Ld4lLccShelfMark,
	BfShelfMarkNlm: Ld4lNlmShelfMark,
	BfShelfMarkUdc: Ld4lUdcShelfMark,
}
