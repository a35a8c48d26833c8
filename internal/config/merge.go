package config

// Merge は base の上に over を重ねた設定を返します。
// over 側で指定されたフィールド（非 nil）が勝ちます。
func Merge(base, over Config) Config {
	out := base
	e := &out.Engine
	o := over.Engine
	if o.Paths != nil {
		e.Paths = o.Paths
	}
	if o.Excludes != nil {
		e.Excludes = o.Excludes
	}
	if o.Langs != nil {
		e.Langs = o.Langs
	}
	if o.Schemes != nil {
		e.Schemes = o.Schemes
	}
	if o.IncludeComments != nil {
		e.IncludeComments = o.IncludeComments
	}
	if o.IncludeDocstrings != nil {
		e.IncludeDocstrings = o.IncludeDocstrings
	}
	if o.Dedupe != nil {
		e.Dedupe = o.Dedupe
	}
	if o.ExcludeTypical != nil {
		e.ExcludeTypical = o.ExcludeTypical
	}
	if o.Jobs != nil {
		e.Jobs = o.Jobs
	}
	if o.MaxFileBytes != nil {
		e.MaxFileBytes = o.MaxFileBytes
	}
	if o.Root != nil {
		e.Root = o.Root
	}
	if o.Output != nil {
		e.Output = o.Output
	}
	if o.Color != nil {
		e.Color = o.Color
	}
	u := &out.UI
	ou := over.UI
	if ou.Fields != nil {
		u.Fields = ou.Fields
	}
	if ou.Sort != nil {
		u.Sort = ou.Sort
	}
	if ou.Truncate != nil {
		u.Truncate = ou.Truncate
	}
	return out
}
