package vocab

// LD4L types
const (
	Ld4lWork                  = LD4L + "Work"
	Ld4lInstance              = LD4L + "Instance"
	Ld4lItem                  = LD4L + "Item"
	Ld4lTitle                 = LD4L + "Title"
	Ld4lTitleElement          = LD4L + "TitleElement"
	Ld4lMainTitleElement      = LD4L + "MainTitleElement"
	Ld4lNonSortTitleElement   = LD4L + "NonSortTitleElement"
	Ld4lSubtitleElement       = LD4L + "SubtitleElement"
	Ld4lIdentifier            = LD4L + "Identifier"
	Ld4lOclcIdentifier        = LD4L + "OclcIdentifier"
	Ld4lLocalIlsIdentifier    = LD4L + "LocalIlsIdentifier"
	Ld4lProvision             = LD4L + "Provision"
	Ld4lPublisherProvision    = LD4L + "PublisherProvision"
	Ld4lDistributorProvision  = LD4L + "DistributorProvision"
	Ld4lManufacturerProvision = LD4L + "ManufacturerProvision"
	Ld4lProducerProvision     = LD4L + "ProducerProvision"
	Ld4lContribution          = LD4L + "Contribution"
	Ld4lFamily                = LD4L + "Family"
	Ld4lMeeting               = LD4L + "Meeting"
	Ld4lJurisdiction          = LD4L + "Jurisdiction"
	Ld4lTopic                 = LD4L + "Topic"
	Ld4lTemporal              = LD4L + "Temporal"
	Ld4lEvent                 = LD4L + "Event"
	Ld4lLanguage              = LD4L + "Language"
	Ld4lShelfMark             = LD4L + "ShelfMark"
	Ld4lDdcShelfMark          = LD4L + "DdcShelfMark"
	Ld4lLccShelfMark          = LD4L + "LccShelfMark"
	Ld4lNlmShelfMark          = LD4L + "NlmShelfMark"
	Ld4lUdcShelfMark          = LD4L + "UdcShelfMark"
	Ld4lCollection            = LD4L + "Collection"
	Ld4lIntegrating           = LD4L + "Integrating"
	Ld4lMonograph             = LD4L + "Monograph"
	Ld4lMultipartMonograph    = LD4L + "MultipartMonograph"
	Ld4lSerial                = LD4L + "Serial"
)

// LD4L properties
const (
	Ld4lAtLocation         = LD4L + "atLocation"
	Ld4lBarcode            = LD4L + "barcode"
	Ld4lDate               = LD4L + "date"
	Ld4lHasAgent           = LD4L + "hasAgent"
	Ld4lHasContribution    = LD4L + "hasContribution"
	Ld4lHasLanguage        = LD4L + "hasLanguage"
	Ld4lHasLocation        = LD4L + "hasLocation"
	Ld4lHasPart            = LD4L + "hasPart"
	Ld4lHasProvision       = LD4L + "hasProvision"
	Ld4lHasShelfMark       = LD4L + "hasShelfMark"
	Ld4lHasSubject         = LD4L + "hasSubject"
	Ld4lHasTitle           = LD4L + "hasTitle"
	Ld4lIdentifiedBy       = LD4L + "identifiedBy"
	Ld4lIsHoldingFor       = LD4L + "isHoldingFor"
	Ld4lIsInstanceOf       = LD4L + "isInstanceOf"
	Ld4lIsPrimary          = LD4L + "isPrimary"
	Ld4lNext               = LD4L + "next"
	Ld4lHasAnnotation      = LD4L + "hasAnnotation"
	Ld4lIsPartOf           = LD4L + "isPartOf"
	Ld4lRelated            = LD4L + "related"
	Ld4lExtent             = LD4L + "extent"
	Ld4lDimensions         = LD4L + "dimensions"
	Ld4lIllustrationNote   = LD4L + "illustrationNote"
	Ld4lHasGenre           = LD4L + "hasGenre"
	Ld4lHasFindingAid      = LD4L + "hasFindingAid"
	Ld4lHasExpression      = LD4L + "hasExpression"
	Ld4lIsExpressionOf     = LD4L + "isExpressionOf"
	Ld4lHasOriginalVersion = LD4L + "hasOriginalVersion"
	Ld4lHasOtherEdition    = LD4L + "hasOtherEdition"
	Ld4lHasReproduction    = LD4L + "hasReproduction"
	Ld4lHasSupplement      = LD4L + "hasSupplement"
	Ld4lSupplements        = LD4L + "supplements"
	Ld4lTranslatedAs       = LD4L + "translatedAs"
	Ld4lTranslates         = LD4L + "translates"
	Ld4lPrecedes           = LD4L + "precedes"
	Ld4lFollows            = LD4L + "follows"
	Ld4lSupersedes         = LD4L + "supersedes"
	Ld4lSupersededBy       = LD4L + "supersededBy"
	Ld4lHasAbsorbed        = LD4L + "hasAbsorbed"
	Ld4lAbsorbedBy         = LD4L + "absorbedBy"
	Ld4lContinues          = LD4L + "continuesUnderNewTitle"
	Ld4lContinuedBy        = LD4L + "continuedUnderNewTitleBy"
	Ld4lSeparatedFrom      = LD4L + "separatedFrom"
	Ld4lHasCreator         = LD4L + "hasCreator"
)

// LD4L legacy properties keep Bibframe data with no LD4L modeling yet.
const (
	LegacyFormDesignation          = LD4LLegacy + "formDesignation"
	LegacyMusicKey                 = LD4LLegacy + "musicKey"
	LegacyProviderRole             = LD4LLegacy + "providerRole"
	LegacyProviderStatement        = LD4LLegacy + "providerStatement"
	LegacySupplementaryContentNote = LD4LLegacy + "supplementaryContentNote"
	LegacyTitleType                = LD4LLegacy + "titleType"
)
