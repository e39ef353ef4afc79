package host

import "strings"

// ObjectRef identifies one exportable resource. Name is the source
// identifier with its container-path prefix stripped and is used
// verbatim as the output file stem, which is what makes re-exports of
// the same resource land on the same path.
type ObjectRef struct {
	Kind Kind
	Name string
	Path string
}

func NewObjectRef(kind Kind, sourcePath string) ObjectRef {
	return ObjectRef{
		Kind: kind,
		Name: StripName(sourcePath),
		Path: sourcePath,
	}
}

// StripName drops everything up to the last path or object separator.
// "/Game/Props/Rock.Rock" and "Props/Rock" both become "Rock".
func StripName(sourcePath string) string {
	name := sourcePath
	if i := strings.LastIndexAny(name, "/\\.:"); i >= 0 {
		name = name[i+1:]
	}
	return name
}
