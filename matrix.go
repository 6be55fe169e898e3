package peacock

// mat3 is a row-major 3x3 matrix.
type mat3 [3][3]float64

// vec3 is a column vector.
type vec3 [3]float64

// Canonical Oklab matrices. M1 maps linear sRGB to LMS, M2 maps the cube-rooted
// LMS response to Lab. The inverses run the pipeline backwards.
var (
	m1 = mat3{
		{0.4122214708, 0.5363325363, 0.0514459929},
		{0.2119034982, 0.6806995451, 0.1073969566},
		{0.0883024619, 0.2817188376, 0.6299787005},
	}
	m2 = mat3{
		{0.2104542553, 0.7936177850, -0.0040720468},
		{1.9779984951, -2.4285922050, 0.4505937099},
		{0.0259040371, 0.7827717662, -0.8086757660},
	}
	invM1 = mat3{
		{4.0767416621, -3.3077115913, 0.2309699292},
		{-1.2684380046, 2.6097574011, -0.3413193965},
		{-0.0041960863, -0.7034186147, 1.7076147010},
	}
	invM2 = mat3{
		{0.9999999985, 0.3963377922, 0.2158037581},
		{1.0000000089, -0.1055613423, -0.0638541748},
		{1.0000000547, -0.0894841821, -1.2914855480},
	}
)

// dot multiplies m by v. Each row is summed left to right; the explicit
// float64 conversions keep the compiler from fusing the products into FMA
// instructions, so results are identical on every architecture.
func dot(m mat3, v vec3) vec3 {
	var out vec3
	for i, row := range m {
		out[i] = float64(row[0]*v[0]) + float64(row[1]*v[1]) + float64(row[2]*v[2])
	}
	return out
}
