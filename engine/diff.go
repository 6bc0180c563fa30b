package engine

import "github.com/archivelift/bucketmigrate/client"

// equivalent reports whether a source descriptor already exists on the
// destination in a form that needs no transfer: same key, same etag.
func equivalent(source, destination client.Descriptor) bool {
	return source.Key == destination.Key && source.ETag == destination.ETag
}

// Diff retains the Source descriptors that have no equivalent Destination
// descriptor. Keys present only on Destination are ignored; this module
// never deletes.
func Diff(source, destination []client.Descriptor) []client.Descriptor {
	byKey := make(map[string]client.Descriptor, len(destination))
	for _, d := range destination {
		byKey[d.Key] = d
	}

	retained := make([]client.Descriptor, 0, len(source))
	for _, s := range source {
		if d, ok := byKey[s.Key]; ok && equivalent(s, d) {
			continue
		}
		retained = append(retained, s)
	}
	return retained
}
