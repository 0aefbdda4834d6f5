package argon

import "github.com/lestrrat-go/option"

type Option = option.Interface

type identDocumentEncoding struct{}
type identDocumentStandalone struct{}
type identDocumentVersion struct{}
type identDocumentURL struct{}
type identAcquireNamespace struct{}
type identAdoptIDs struct{}

type DocumentOption interface {
	Option
	documentOption()
}

type documentOption struct{ Option }

func (*documentOption) documentOption() {}

type DOMWrapOption interface {
	Option
	domWrapOption()
}

type domWrapOption struct{ Option }

func (*domWrapOption) domWrapOption() {}

// WithEncoding specifies the encoding of an XML document
func WithEncoding(v string) DocumentOption {
	return &documentOption{option.New(identDocumentEncoding{}, v)}
}

// WithStandalone specifies if the XML is a standalone XML document or not
func WithStandalone(v DocumentStandaloneType) DocumentOption {
	return &documentOption{option.New(identDocumentStandalone{}, v)}
}

// WithVersion specifies the XML version of an XML document
func WithVersion(v string) DocumentOption {
	return &documentOption{option.New(identDocumentVersion{}, v)}
}

// WithURL records the URL the document was loaded from
func WithURL(v string) DocumentOption {
	return &documentOption{option.New(identDocumentURL{}, v)}
}

// WithAcquireNamespace installs the namespace-acquisition callback on a
// DOM wrap context. The callback is consulted before a missing
// destination namespace is synthesized, letting the host application
// supply or cache namespace objects.
func WithAcquireNamespace(v AcquireNamespaceFunc) DOMWrapOption {
	return &domWrapOption{option.New(identAcquireNamespace{}, v)}
}

// WithAdoptIDs makes AdoptNode re-register adopted ID attributes in the
// destination document's identity registry, re-validating uniqueness
// there. Without it, adopted ID entries are only removed from the source.
func WithAdoptIDs(v bool) DOMWrapOption {
	return &domWrapOption{option.New(identAdoptIDs{}, v)}
}
