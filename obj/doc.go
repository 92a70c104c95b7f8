// Package obj reads Wavefront OBJ meshes and MTL material libraries into
// g3d meshes.
//
// Supported OBJ directives are v, vt, vn, f, usemtl and mtllib; every
// other directive is ignored. Faces with more than three corners are
// triangulated as a fan around their first corner. Indices may be
// absolute (1-based) or relative (negative, counting back from the most
// recent element).
//
// Material names from usemtl and newmtl are normalized to Unicode NFC so
// that names written by different tools compare equal.
package obj
