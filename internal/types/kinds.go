package types

type DocumentKind string

const (
	DocumentKindLanguage DocumentKind = "language"
	DocumentKindAddon    DocumentKind = "language-addon"
)

const (
	LangResource      = "metainfo/zk/lang.xml"
	LangAddonResource = "metainfo/zk/lang-addon.xml"
)
