// Package document renders paginated documents into drawable surfaces.
//
// Core concepts:
//   - Engine: a pluggable document backend registered by name, in the
//     manner of database/sql drivers. Engines open a URL into a Document.
//   - Renderer: owns the lifecycle of one opened document. It allocates one
//     surface slot per page, waits until the UI has mounted surfaces and
//     then paints pages strictly in order at a fixed scale.
//   - Surface / Canvas: an addressable raster target sized in pixels. The
//     Canvas implementation maps pixels onto a text cell grid.
//   - Restriction: a scoped copy/print restriction acquired on a Host when
//     the viewer mounts and released when it unmounts.
package document
