package core

import "zk-langdef/internal/types"

const textboxZKBind = "@ZKBIND(ACCESS=[both], SAVE_EVENT=[onChange], LOAD_REPLACEMENT=[rawValue], LOAD_TYPE=[java.lang.String])"

func zulLanguage() types.LangDocument {
	return types.LangDocument{
		URL:          "file:/zul/metainfo/zk/lang.xml",
		Kind:         types.DocumentKindLanguage,
		LanguageName: "xul/html",
		DeviceType:   "ajax",
		Namespace:    "http://www.zkoss.org/2005/zul",
		Extensions:   []string{"zul", "xul"},
		Components: []types.ComponentSpec{
			{Name: "textbox", ComponentClass: "org.zkoss.zul.Textbox", WidgetClass: "zul.inp.Textbox"},
			{Name: "label", ComponentClass: "org.zkoss.zul.Label", WidgetClass: "zul.wgt.Label"},
		},
	}
}

func addonDoc(name string, depends []string, components ...types.ComponentSpec) types.LangDocument {
	return types.LangDocument{
		URL:          "file:/" + name + "/metainfo/zk/lang-addon.xml",
		Kind:         types.DocumentKindAddon,
		LanguageName: "xul/html",
		AddonName:    name,
		Depends:      depends,
		Components:   components,
	}
}

func zkbindAnnotation() types.Annotation {
	return types.Annotation{
		Name: "ZKBIND",
		Attributes: []types.AnnotationAttribute{
			{Name: "ACCESS", Values: []string{"both"}},
			{Name: "SAVE_EVENT", Values: []string{"onChange"}},
			{Name: "LOAD_REPLACEMENT", Values: []string{"rawValue"}},
			{Name: "LOAD_TYPE", Values: []string{"java.lang.String"}},
		},
	}
}

func zkbindAddon() types.LangDocument {
	return addonDoc("zkbind", []string{"zul"}, types.ComponentSpec{
		Name:    "textbox",
		Extends: "textbox",
		Annotations: []types.AnnotationSpec{
			{Property: "value", Annotation: zkbindAnnotation()},
		},
	})
}

func missingDependsAddon() types.LangDocument {
	doc := addonDoc("missing-depends", nil, types.ComponentSpec{
		Name:           "missingDepends",
		Extends:        "textbox",
		ComponentClass: "org.zkoss.test.definitionloaders.ExtendsCorrectly",
	})
	doc.URL = "file:/test/DefinitionLoadersTest/missing-depends.xml"
	return doc
}

func extendsCorrectlyAddon() types.LangDocument {
	doc := addonDoc("extends-correctly", []string{"zkbind"}, types.ComponentSpec{
		Name:           "extendsCorrectly",
		Extends:        "textbox",
		ComponentClass: "org.zkoss.test.definitionloaders.ExtendsCorrectly",
	})
	doc.URL = "file:/test/DefinitionLoadersTest/extends-correctly.xml"
	return doc
}

func simpleWidgetsAddon() types.LangDocument {
	doc := addonDoc("simple-widgets", nil, types.ComponentSpec{
		Name:           "simpleWidget",
		ComponentClass: "org.zkoss.test.definitionloaders.SimpleWidget",
	})
	doc.URL = "file:/test/DefinitionLoadersTest/simple-widgets.xml"
	return doc
}
