package redacted

// Clone returns a copy of the request that shares no slices with r.
// Cached requests are handed out as clones so callers may edit them freely.
func (r Request) Clone() Request {
	clone := r
	if r.TypeParams != nil {
		clone.TypeParams = append([]TypeParam(nil), r.TypeParams...)
	}
	if r.Properties != nil {
		clone.Properties = append([]Property(nil), r.Properties...)
	}
	if r.Imports != nil {
		clone.Imports = append([]Import(nil), r.Imports...)
	}
	return clone
}
