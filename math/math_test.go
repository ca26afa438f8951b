package math_test

import (
	gomath "math"
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/db47h/mpf"
	"github.com/db47h/mpf/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mathext"
)

var modes = [...]mpf.RoundingMode{
	mpf.ToNearestEven,
	mpf.ToNearestAway,
	mpf.ToZero,
	mpf.AwayFromZero,
	mpf.ToNegativeInf,
	mpf.ToPositiveInf,
}

// num returns the exact value of s.
func num(s string) *mpf.Float {
	x, _, err := mpf.ParseFloat(s, 0, 300, mpf.ToNearestEven)
	if err != nil {
		panic(err)
	}
	if x.Acc() != mpf.Exact {
		panic("inexact test input " + s)
	}
	return x
}

type unary func(z, x *mpf.Float) *mpf.Float

func fn1(f unary, x string) func(z *mpf.Float) *mpf.Float {
	return func(z *mpf.Float) *mpf.Float { return f(z, num(x)) }
}

func fn2(f func(z, x, y *mpf.Float) *mpf.Float, x, y string) func(z *mpf.Float) *mpf.Float {
	return func(z *mpf.Float) *mpf.Float { return f(z, num(x), num(y)) }
}

// 76 significant digits
var refs = []struct {
	name string
	f    func(z *mpf.Float) *mpf.Float
	want string
}{
	{"Pi", math.Pi, "3.141592653589793238462643383279502884197169399375105820974944592307816406286e+0"},
	{"Ln2", math.Ln2, "6.931471805599453094172321214581765680755001343602552541206800094933936219697e-1"},
	{"Euler", math.Euler, "5.772156649015328606065120900824024310421593359399235988057672348848677267777e-1"},
	{"Catalan", math.Catalan, "9.159655941772190150546035149323841107741493742816721342664981196217630197763e-1"},

	{"Exp(1)", fn1(math.Exp, "1"), "2.718281828459045235360287471352662497757247093699959574966967627724076630354e+0"},
	{"Exp(-10)", fn1(math.Exp, "-10"), "4.539992976248485153559151556055061023791808886656496925907130565099942161430e-5"},
	{"Exp(100.5)", fn1(math.Exp, "100.5"), "4.431955909845895416010706197956481689589948187063064907487691185492512593297e+43"},
	{"Expm1(2**-33)", fn1(math.Expm1, "0x1p-33"), "1.164153218337110780314223563476279035652543893367827426211623954897853287777e-10"},
	{"Exp2(0.5)", fn1(math.Exp2, "0.5"), "1.414213562373095048801688724209698078569671875376948073176679737990732478462e+0"},
	{"Exp10(0.5)", fn1(math.Exp10, "0.5"), "3.162277660168379331998893544432718533719555139325216826857504852792594438639e+0"},

	{"Log(10)", fn1(math.Log, "10"), "2.302585092994045684017991454684364207601101488628772976033327900967572609677e+0"},
	{"Log(0.75)", fn1(math.Log, "0.75"), "-2.876820724517809274392190059938274315035097108977610565066656853492929507208e-1"},
	{"Log2(10)", fn1(math.Log2, "10"), "3.321928094887362347870319429489390175864831393024580612054756395815934776609e+0"},
	{"Log10(2)", fn1(math.Log10, "2"), "3.010299956639811952137388947244930267681898814621085413104274611271081892744e-1"},
	{"Log1p(-0.5)", fn1(math.Log1p, "-0.5"), "-6.931471805599453094172321214581765680755001343602552541206800094933936219697e-1"},
	{"Log1p(2**-66)", fn1(math.Log1p, "0x1p-66"), "1.355252715606880542500132451471628018126303781839989354198136086149266342786e-20"},

	{"Sin(1)", fn1(math.Sin, "1"), "8.414709848078965066525023216302989996225630607983710656727517099919104043912e-1"},
	{"Cos(1)", fn1(math.Cos, "1"), "5.403023058681397174009366074429766037323104206179222276700972553811003947745e-1"},
	{"Tan(1)", fn1(math.Tan, "1"), "1.557407724654902230506974807458360173087250772381520038383946605698861397152e+0"},
	{"Sin(1e22)", fn1(math.Sin, "1e22"), "-8.522008497671888017727058937530293682617621504100436562565093260259103119921e-1"},
	{"Cos(100)", fn1(math.Cos, "100"), "8.623188722876839341019385139508425355100840085355108292801621126927210880509e-1"},
	{"Atan(0.5)", fn1(math.Atan, "0.5"), "4.636476090008061162142562314612144020285370542861202638109330887201978641657e-1"},
	{"Atan(10)", fn1(math.Atan, "10"), "1.471127674303734591852875571761730851855306377183238262471963519343880455696e+0"},
	{"Asin(0.5)", fn1(math.Asin, "0.5"), "5.235987755982988730771072305465838140328615665625176368291574320513027343810e-1"},
	{"Acos(0.25)", fn1(math.Acos, "0.25"), "1.318116071652817965745664254646040469846390966590714716853548517413333142662e+0"},

	{"Sinh(1)", fn1(math.Sinh, "1"), "1.175201193643801456882381850595600815155717981334095870229565413013307567304e+0"},
	{"Cosh(2)", fn1(math.Cosh, "2"), "3.762195691083631459562213477773746108293973558230711602777643347588323585090e+0"},
	{"Tanh(0.5)", fn1(math.Tanh, "0.5"), "4.621171572600097585023184836436725487302892803301130385527318158380809061404e-1"},
	{"Asinh(1)", fn1(math.Asinh, "1"), "8.813735870195430252326093249797923090281603282616354107532956086533771842220e-1"},
	{"Acosh(2)", fn1(math.Acosh, "2"), "1.316957896924816708625046347307968444026981971467516479768472256920460185416e+0"},
	{"Atanh(0.5)", fn1(math.Atanh, "0.5"), "5.493061443340548456976226184612628523237452789113747258673471668187471466093e-1"},

	{"Pow(3, 1.25)", fn2(math.Pow, "3", "1.25"), "3.948222038857477382457656705390997165480205770617466530195767975787600385592e+0"},
	{"Pow(10, -3.5)", fn2(math.Pow, "10", "-3.5"), "3.162277660168379331998893544432718533719555139325216826857504852792594438639e-4"},
	{"Hypot(3, 4)", fn2(math.Hypot, "3", "4"), "5"},
	{"Agm(1, 2)", fn2(math.Agm, "1", "2"), "1.456791031046906869186432383265081974973863943221305590794172383267926454580e+0"},

	{"Gamma(0.5)", fn1(math.Gamma, "0.5"), "1.772453850905516027298167483341145182797549456122387128213807789852911284591e+0"},
	{"Gamma(10.25)", fn1(math.Gamma, "10.25"), "6.392325987795767942837584018760849671534252849968211468120979937789260384182e+5"},
	{"Gamma(-2.5)", fn1(math.Gamma, "-2.5"), "-9.453087204829418812256893244486107641586930432652731350473641545882193517819e-1"},
	{"Gamma(100.5)", fn1(math.Gamma, "100.5"), "9.320963104082716608349109809141910437906497038162361154016117519412076597761e+156"},
	{"Lngamma(0.25)", fn1(math.Lngamma, "0.25"), "1.288022524698077457370610440219717295925377565112860550499987022533961262676e+0"},
	{"Lngamma(1000)", fn1(math.Lngamma, "1000"), "5.905220423209181211826076912361440789848942409715432590023387519888384133364e+3"},
	{"Digamma(1)", fn1(math.Digamma, "1"), "-5.772156649015328606065120900824024310421593359399235988057672348848677267777e-1"},
	{"Digamma(0.5)", fn1(math.Digamma, "0.5"), "-1.963510026021423479440976332998755567193159604660434107047127253871654970717e+0"},
	{"Digamma(10.5)", fn1(math.Digamma, "10.5"), "2.303001034297686375272593550849766052226292632129263982960560277035690178114e+0"},
	{"Digamma(-0.5)", fn1(math.Digamma, "-0.5"), "3.648997397857652055902366700124443280684039533956589295287274612834502928295e-2"},

	{"Zeta(2)", fn1(math.Zeta, "2"), "1.644934066848226436472415166646025189218949901206798437735558229370007470403e+0"},
	{"Zeta(3)", fn1(math.Zeta, "3"), "1.202056903159594285399738161511449990764986292340498881792271555341838205786e+0"},
	{"Zeta(-1)", fn1(math.Zeta, "-1"), "-8.333333333333333333333333333333333333333333333333333333333333333333333333333e-2"},
	{"ZetaUint64(4)", func(z *mpf.Float) *mpf.Float { return math.ZetaUint64(z, 4) }, "1.082323233711138191516003696541167902774750951918726907682976215444120616187e+0"},

	{"Erf(1)", fn1(math.Erf, "1"), "8.427007929497148693412206350826092592960669979663029084599378978347172540960e-1"},
	{"Erf(0.25)", fn1(math.Erf, "0.25"), "2.763263901682369329850682677648157120653539778923112540824719312626850838973e-1"},
	{"Erfc(1)", fn1(math.Erfc, "1"), "1.572992070502851306587793649173907407039330020336970915400621021652827459040e-1"},
	{"Erfc(-0.5)", fn1(math.Erfc, "-0.5"), "1.520499877813046537682746653891964528736451575757963700058805725647193521717e+0"},

	{"J0(1)", fn1(math.J0, "1"), "7.651976865579665514497175261026632209092742897553252418615475491192789122153e-1"},
	{"J1(2.5)", fn1(math.J1, "2.5"), "4.970941024642740380108162762644222425212349695190068188798724289187241757671e-1"},
	{"Jn(5, 3)", func(z *mpf.Float) *mpf.Float { return math.Jn(z, 5, num("3")) }, "4.302843487704758392491126046298622138848968092111616919729929502550807324341e-2"},
	{"Jn(-5, 3)", func(z *mpf.Float) *mpf.Float { return math.Jn(z, -5, num("3")) }, "-4.302843487704758392491126046298622138848968092111616919729929502550807324341e-2"},
	{"Y0(1)", fn1(math.Y0, "1"), "8.825696421567695798292676602351516282781752309067554671104384761199978932351e-2"},

	{"Ai(0)", fn1(math.Ai, "0"), "3.550280538878172392600631860041831763979791741991772405833265103008100424501e-1"},
	{"Ai(1)", fn1(math.Ai, "1"), "1.352924163128814155241474235154663061749441429883307060091020547576335348023e-1"},
	{"Ai(-2)", fn1(math.Ai, "-2"), "2.274074282016855759919244360378737994607722254170967164957900340170790486511e-1"},

	{"Eint(1)", fn1(math.Eint, "1"), "1.895117816355936755466520934331634269017060581732707591646228431882513834534e+0"},
	{"Eint(-1)", fn1(math.Eint, "-1"), "-2.193839343955202736771637754601216490310472934069082075779786130735686985591e-1"},
	{"Eint(0.25)", fn1(math.Eint, "0.25"), "-5.425432646619137295335318517343131618605951501281112277469533634852988850540e-1"},

	{"Li2(0.5)", fn1(math.Li2, "0.5"), "5.822405264650125059026563201596801087441984748061264254343470478731710440717e-1"},
	{"Li2(-1)", fn1(math.Li2, "-1"), "-8.224670334241132182362075833230125946094749506033992188677791146850037352016e-1"},
	{"Li2(0.25)", fn1(math.Li2, "0.25"), "2.676526390827326069191838284878115758198570669138545938652013531126933436319e-1"},
	{"Li2(2)", fn1(math.Li2, "2"), "2.467401100272339654708622749969037783828424851810197656603337344055011205605e+0"},
	{"Li2(-3)", fn1(math.Li2, "-3"), "-1.939375420766708953077271719177891441222590177808578425838557466747972528312e+0"},
}

func TestCorrectRounding(t *testing.T) {
	for _, test := range refs {
		t.Run(test.name, func(t *testing.T) {
			exact, _, err := mpf.ParseFloat(test.want, 0, 300, mpf.ToNearestEven)
			require.NoError(t, err)
			for _, prec := range []uint{2, 10, 24, 53, 113, 200} {
				for _, mode := range modes {
					want, _, _ := mpf.ParseFloat(test.want, 0, prec, mode)
					z := new(mpf.Float).SetPrec(prec).SetMode(mode)
					got := test.f(z)
					require.Same(t, z, got)
					if !assert.Equal(t, 0, z.Cmp(want), "at %d bits in %s:\ngot  %s\nwant %s", prec, mode, z.Text('p', 0), want.Text('p', 0)) {
						continue
					}
					wantAcc := mpf.Accuracy(z.Cmp(exact))
					assert.Equal(t, wantAcc, z.Acc(), "accuracy at %d bits in %s", prec, mode)
				}
			}
		})
	}
}

func TestPrecisionZero(t *testing.T) {
	z := new(mpf.Float)
	math.Exp(z, new(mpf.Float).SetPrec(100).SetInt64(1))
	assert.Equal(t, uint(100), z.Prec())

	z = new(mpf.Float)
	math.Pi(z)
	assert.Equal(t, uint(mpf.DefaultPrec), z.Prec())

	z = new(mpf.Float)
	math.Pow(z, new(mpf.Float).SetPrec(20).SetInt64(3), new(mpf.Float).SetPrec(70).SetFloat64(0.5))
	assert.Equal(t, uint(70), z.Prec())
}

func TestAliasing(t *testing.T) {
	for _, f := range []struct {
		name string
		f    unary
	}{
		{"Exp", math.Exp}, {"Log", math.Log}, {"Sin", math.Sin}, {"Atan", math.Atan},
		{"Tanh", math.Tanh}, {"Gamma", math.Gamma}, {"Erf", math.Erf}, {"Li2", math.Li2},
	} {
		x := mpf.NewFloat(0.375)
		want := f.f(new(mpf.Float).SetPrec(53), x)
		got := f.f(x, x)
		assert.Equal(t, 0, want.Cmp(got), f.name)
	}
	s, c := mpf.NewFloat(2), new(mpf.Float).SetPrec(53)
	math.SinCos(s, c, s)
	assert.Equal(t, 0, s.Cmp(math.Sin(new(mpf.Float).SetPrec(53), mpf.NewFloat(2))))
	assert.Equal(t, 0, c.Cmp(math.Cos(new(mpf.Float).SetPrec(53), mpf.NewFloat(2))))
}

func f64(x *mpf.Float) float64 {
	f, _ := x.Float64()
	return f
}

var (
	nan    = gomath.NaN()
	inf    = gomath.Inf(1)
	negZ   = gomath.Copysign(0, -1)
	negInf = gomath.Inf(-1)
)

func TestSpecialValues(t *testing.T) {
	for _, test := range []struct {
		name string
		f    unary
		x    float64
		want float64
	}{
		{"Exp", math.Exp, negInf, 0},
		{"Exp", math.Exp, inf, inf},
		{"Exp", math.Exp, negZ, 1},
		{"Exp2", math.Exp2, -1074, 0x1p-1074},
		{"Exp10", math.Exp10, 3, 1000},
		{"Expm1", math.Expm1, negInf, -1},
		{"Expm1", math.Expm1, negZ, negZ},
		{"Log", math.Log, 0, negInf},
		{"Log", math.Log, negZ, negInf},
		{"Log", math.Log, -1, nan},
		{"Log", math.Log, 1, 0},
		{"Log2", math.Log2, 0x1p-500, -500},
		{"Log10", math.Log10, 1e22, 22},
		{"Log1p", math.Log1p, -1, negInf},
		{"Log1p", math.Log1p, negZ, negZ},
		{"Sin", math.Sin, negZ, negZ},
		{"Sin", math.Sin, inf, nan},
		{"Cos", math.Cos, negInf, nan},
		{"Cos", math.Cos, 0, 1},
		{"Tan", math.Tan, negZ, negZ},
		{"Csc", math.Csc, 0, inf},
		{"Csc", math.Csc, negZ, negInf},
		{"Cot", math.Cot, negZ, negInf},
		{"Sec", math.Sec, 0, 1},
		{"Atan", math.Atan, negZ, negZ},
		{"Asin", math.Asin, 1.5, nan},
		{"Acos", math.Acos, 1, 0},
		{"Sinh", math.Sinh, negInf, negInf},
		{"Cosh", math.Cosh, negInf, inf},
		{"Tanh", math.Tanh, negInf, -1},
		{"Coth", math.Coth, negZ, negInf},
		{"Csch", math.Csch, 0, inf},
		{"Sech", math.Sech, inf, 0},
		{"Asinh", math.Asinh, negZ, negZ},
		{"Acosh", math.Acosh, 1, 0},
		{"Acosh", math.Acosh, 0.5, nan},
		{"Atanh", math.Atanh, 1, inf},
		{"Atanh", math.Atanh, -1, negInf},
		{"Atanh", math.Atanh, 2, nan},
		{"Gamma", math.Gamma, 0, inf},
		{"Gamma", math.Gamma, negZ, negInf},
		{"Gamma", math.Gamma, -3, nan},
		{"Gamma", math.Gamma, negInf, nan},
		{"Gamma", math.Gamma, 6, 120},
		{"Lngamma", math.Lngamma, 1, 0},
		{"Lngamma", math.Lngamma, 2, 0},
		{"Lngamma", math.Lngamma, -2, inf},
		{"Lngamma", math.Lngamma, -0.5, nan},
		{"Digamma", math.Digamma, 0, negInf},
		{"Digamma", math.Digamma, negZ, inf},
		{"Digamma", math.Digamma, -1, nan},
		{"Digamma", math.Digamma, inf, inf},
		{"Zeta", math.Zeta, 0, -0.5},
		{"Zeta", math.Zeta, 1, inf},
		{"Zeta", math.Zeta, -2, 0},
		{"Zeta", math.Zeta, inf, 1},
		{"Zeta", math.Zeta, negInf, nan},
		{"Zeta", math.Zeta, 100, 1},
		{"Erf", math.Erf, negInf, -1},
		{"Erf", math.Erf, negZ, negZ},
		{"Erf", math.Erf, 10, 1},
		{"Erfc", math.Erfc, negInf, 2},
		{"Erfc", math.Erfc, inf, 0},
		{"J0", math.J0, 0, 1},
		{"J0", math.J0, negInf, 0},
		{"J1", math.J1, negZ, negZ},
		{"Y0", math.Y0, 0, negInf},
		{"Y0", math.Y0, -1, nan},
		{"Y1", math.Y1, inf, 0},
		{"Ai", math.Ai, inf, 0},
		{"Ai", math.Ai, negInf, 0},
		{"Eint", math.Eint, 0, negInf},
		{"Eint", math.Eint, negInf, negZ},
		{"Eint", math.Eint, inf, inf},
		{"Li2", math.Li2, negZ, negZ},
		{"Li2", math.Li2, inf, negInf},
		{"Li2", math.Li2, 1, gomath.Pi * gomath.Pi / 6},
	} {
		z := new(mpf.Float).SetPrec(53)
		test.f(z, mpf.NewFloat(test.x))
		got := f64(z)
		if gomath.IsNaN(test.want) {
			assert.True(t, z.IsNaN(), "%s(%g) = %g, want NaN", test.name, test.x, got)
			continue
		}
		assert.Equal(t, test.want, got, "%s(%g)", test.name, test.x)
		assert.Equal(t, gomath.Signbit(test.want), z.Signbit(), "sign of %s(%g)", test.name, test.x)
	}
}

func TestPowSpecial(t *testing.T) {
	// C99 Annex F
	for _, test := range []struct {
		x, y, want float64
	}{
		{nan, 0, 1},
		{1, nan, 1},
		{negZ, -3, negInf},
		{0, -3, inf},
		{negZ, -2, inf},
		{negZ, negInf, inf},
		{negZ, 3, negZ},
		{negZ, 2, 0},
		{0, inf, 0},
		{-1, inf, 1},
		{-1, negInf, 1},
		{0.5, inf, 0},
		{2, inf, inf},
		{0.5, negInf, inf},
		{2, negInf, 0},
		{inf, -1, 0},
		{inf, 0.5, inf},
		{negInf, -3, negZ},
		{negInf, -2, 0},
		{negInf, 3, negInf},
		{negInf, 2, inf},
		{-2, 0.5, nan},
		{-2, 3, -8},
		{-8, 1. / 3, nan},
		{4, 0.5, 2},
		{2, -1074, 0x1p-1074},
		{-1, 0x1p100, 1},
		{-1, 0x1p100 + 0x1p48, 1},
	} {
		z := math.Pow(new(mpf.Float).SetPrec(53), mpf.NewFloat(test.x), mpf.NewFloat(test.y))
		got := f64(z)
		if gomath.IsNaN(test.want) {
			assert.True(t, z.IsNaN(), "Pow(%g, %g)", test.x, test.y)
			continue
		}
		assert.Equal(t, test.want, got, "Pow(%g, %g)", test.x, test.y)
		assert.Equal(t, gomath.Signbit(test.want), z.Signbit(), "sign of Pow(%g, %g)", test.x, test.y)
		assert.Equal(t, gomath.Pow(test.x, test.y), got, "Pow(%g, %g) vs math", test.x, test.y)
	}

	// exact results
	z := new(mpf.Float).SetPrec(53)
	math.Pow(z, mpf.NewFloat(6.25), mpf.NewFloat(1.5))
	assert.Equal(t, 15.625, f64(z))
	assert.Equal(t, mpf.Exact, z.Acc())

	// overflow and underflow
	math.Pow(z, mpf.NewFloat(10), new(mpf.Float).SetInt64Exp2(1, 70))
	assert.True(t, z.IsInf())
	math.Pow(z, mpf.NewFloat(-10), new(mpf.Float).SetInt64Exp2(-3, 70))
	assert.True(t, z.IsZero())
}

func TestAtan2Special(t *testing.T) {
	const pi = gomath.Pi
	for _, test := range []struct {
		y, x, want float64
	}{
		{0, 0, 0},
		{negZ, 0, negZ},
		{0, negZ, pi},
		{negZ, negZ, -pi},
		{1, 0, pi / 2},
		{-1, negZ, -pi / 2},
		{0, -1, pi},
		{negZ, -1, -pi},
		{0, 1, 0},
		{inf, 1, pi / 2},
		{negInf, 1, -pi / 2},
		{1, negInf, pi},
		{-1, negInf, -pi},
		{1, inf, 0},
		{-1, inf, negZ},
		{inf, negInf, 3 * pi / 4},
		{inf, inf, pi / 4},
		{negInf, inf, -pi / 4},
		{nan, 1, nan},
		{1, -1, 3 * pi / 4},
		{-0x1p-1000, 1, -0x1p-1000},
	} {
		z := math.Atan2(new(mpf.Float).SetPrec(53), mpf.NewFloat(test.y), mpf.NewFloat(test.x))
		if gomath.IsNaN(test.want) {
			assert.True(t, z.IsNaN())
			continue
		}
		assert.Equal(t, test.want, f64(z), "Atan2(%g, %g)", test.y, test.x)
		assert.Equal(t, gomath.Signbit(test.want), z.Signbit(), "sign of Atan2(%g, %g)", test.y, test.x)
	}
}

func TestLgamma(t *testing.T) {
	for _, x := range []float64{0.5, -0.5, -1.5, -2.5, 3, 7.25, -7.25, 1e-5, -1e-5, 150.5} {
		z := new(mpf.Float).SetPrec(53)
		_, s := math.Lgamma(z, mpf.NewFloat(x))
		want, ws := gomath.Lgamma(x)
		assert.Equal(t, ws, s, "sign of Lgamma(%g)", x)
		assert.InEpsilon(t, want, f64(z), 1e-14, "Lgamma(%g)", x)
	}
	z := new(mpf.Float).SetPrec(53)
	_, s := math.Lgamma(z, new(mpf.Float).SetZero(true))
	assert.True(t, z.IsInf())
	assert.Equal(t, -1, s)
	_, s = math.Lgamma(z, mpf.NewFloat(-4))
	assert.True(t, z.IsInf())
	assert.Equal(t, 1, s)
}

func TestFac(t *testing.T) {
	z := new(mpf.Float).SetPrec(64)
	math.Fac(z, 20)
	u, acc := z.Uint64()
	assert.Equal(t, uint64(2432902008176640000), u)
	assert.Equal(t, mpf.Exact, acc)
	assert.Equal(t, mpf.Exact, z.Acc())

	// 25! = 15511210043330985984000000 needs 84 - 22 = 62 bits
	math.Fac(z.SetPrec(62), 25)
	assert.Equal(t, mpf.Exact, z.Acc())
	math.Fac(z.SetPrec(61), 25)
	assert.NotEqual(t, mpf.Exact, z.Acc())

	// large n goes through Γ(n+1) and agrees with the exact product
	big := new(mpf.Float).SetPrec(100)
	math.Fac(big, 20000)
	lg, _ := gomath.Lgamma(20001)
	assert.InEpsilon(t, lg*gomath.Log2E, float64(big.Exponent()), 1e-6)
}

// Go's math package functions are not correctly rounded, but are accurate to
// a few ulps away from zeros.
func TestAgainstGoMath(t *testing.T) {
	for _, test := range []struct {
		name string
		f    unary
		ref  func(float64) float64
		lo   float64
		hi   float64
	}{
		{"Exp", math.Exp, gomath.Exp, -700, 700},
		{"Expm1", math.Expm1, gomath.Expm1, -5, 5},
		{"Log", math.Log, gomath.Log, 1e-300, 1e300},
		{"Log1p", math.Log1p, gomath.Log1p, -0.99, 10},
		{"Sin", math.Sin, gomath.Sin, -1e3, 1e3},
		{"Cos", math.Cos, gomath.Cos, -1e3, 1e3},
		{"Atan", math.Atan, gomath.Atan, -1e3, 1e3},
		{"Asin", math.Asin, gomath.Asin, -1, 1},
		{"Acos", math.Acos, gomath.Acos, -1, 1},
		{"Sinh", math.Sinh, gomath.Sinh, -50, 50},
		{"Cosh", math.Cosh, gomath.Cosh, -50, 50},
		{"Tanh", math.Tanh, gomath.Tanh, -20, 20},
		{"Asinh", math.Asinh, gomath.Asinh, -1e5, 1e5},
		{"Acosh", math.Acosh, gomath.Acosh, 1, 1e5},
		{"Atanh", math.Atanh, gomath.Atanh, -0.99, 0.99},
		{"Gamma", math.Gamma, gomath.Gamma, 0.01, 170},
		{"Erf", math.Erf, gomath.Erf, -5, 5},
		{"Erfc", math.Erfc, gomath.Erfc, -5, 25},
		{"Digamma", math.Digamma, mathext.Digamma, 0.01, 1e4},
		{"Zeta", math.Zeta, func(x float64) float64 { return mathext.Zeta(x, 1) }, 1.5, 60},
		{"Ai", math.Ai, func(x float64) float64 { return real(mathext.AiryAi(complex(x, 0))) }, -3, 5},
	} {
		rng := rand.New(rand.NewPCG(1, 2))
		z := new(mpf.Float).SetPrec(53)
		for i := 0; i < 200; i++ {
			x := test.lo + rng.Float64()*(test.hi-test.lo)
			test.f(z, mpf.NewFloat(x))
			want := test.ref(x)
			if !assert.InEpsilon(t, want, f64(z), 1e-11, "%s(%g)", test.name, x) {
				break
			}
		}
	}
}

func TestBesselAgainstGoMath(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	z := new(mpf.Float).SetPrec(53)
	for i := 0; i < 200; i++ {
		n := rng.IntN(6)
		x := rng.Float64() * 60
		want := gomath.Jn(n, x)
		math.Jn(z, int64(n), mpf.NewFloat(x))
		// away from zeros
		if gomath.Abs(want) > 1e-3 {
			assert.InDelta(t, want, f64(z), 1e-13, "Jn(%d, %g)", n, x)
		}
		want = gomath.Yn(n, x)
		math.Yn(z, int64(n), mpf.NewFloat(x))
		if gomath.Abs(want) > 1e-3 && x > 0.1 {
			assert.InDelta(t, want, f64(z), 1e-12*gomath.Max(1, gomath.Abs(want)), "Yn(%d, %g)", n, x)
		}
	}
	// large argument takes the asymptotic expansion
	math.J0(z, mpf.NewFloat(1e6))
	assert.InDelta(t, gomath.J0(1e6), f64(z), 1e-15)
	math.Y1(z, mpf.NewFloat(1e6))
	assert.InDelta(t, gomath.Y1(1e6), f64(z), 1e-15)
	// J(n, -x) = (-1)**n J(n, x)
	math.Jn(z, 3, mpf.NewFloat(-2))
	assert.InEpsilon(t, -gomath.Jn(3, 2), f64(z), 1e-14)
	math.Yn(z, -3, mpf.NewFloat(2))
	assert.InEpsilon(t, -gomath.Yn(3, 2), f64(z), 1e-14)
}

// For tiny arguments, results are derived from the leading terms of the
// Taylor expansion.
func TestTinyArguments(t *testing.T) {
	x := new(mpf.Float).SetInt64Exp2(1, -100)
	below := new(mpf.Float).SetPrec(53).Set(x).NextBelow()
	above := new(mpf.Float).SetPrec(53).Set(x).NextAbove()
	for _, test := range []struct {
		name string
		f    unary
		down *mpf.Float // result when rounding toward -Inf
		up   *mpf.Float // result when rounding toward +Inf
	}{
		{"Sin", math.Sin, below, x},
		{"Tan", math.Tan, x, above},
		{"Atan", math.Atan, below, x},
		{"Asin", math.Asin, x, above},
		{"Sinh", math.Sinh, x, above},
		{"Tanh", math.Tanh, below, x},
		{"Asinh", math.Asinh, below, x},
		{"Atanh", math.Atanh, x, above},
		{"Expm1", math.Expm1, x, above},
		{"Log1p", math.Log1p, below, x},
		{"Li2", math.Li2, x, above},
	} {
		z := new(mpf.Float).SetPrec(53).SetMode(mpf.ToNegativeInf)
		test.f(z, x)
		assert.Equal(t, 0, z.Cmp(test.down), "%s rounded down: %s", test.name, z.Text('p', 0))
		z.SetMode(mpf.ToPositiveInf)
		test.f(z, x)
		assert.Equal(t, 0, z.Cmp(test.up), "%s rounded up: %s", test.name, z.Text('p', 0))
		assert.Equal(t, mpf.Above, z.Acc(), test.name)
	}

	z := new(mpf.Float).SetPrec(53).SetMode(mpf.ToZero)
	math.Cos(z, x)
	assert.Equal(t, 1-0x1p-53, f64(z))
	math.Exp(z.SetMode(mpf.AwayFromZero), x)
	assert.Equal(t, 1+0x1p-52, f64(z))
	math.Gamma(z.SetMode(mpf.ToNearestEven), x)
	// Γ(x) = 1/x - γ + O(x) rounds up to 2**100
	assert.Equal(t, 0x1p100, f64(z))
	assert.Equal(t, mpf.Above, z.Acc())
	math.J1(z.SetMode(mpf.ToZero), x)
	assert.Equal(t, 0x1p-101*(1-0x1p-53), f64(z))
}

// Directed roundings bracket the exact value and differ by at most one ulp.
func TestDirectedRounding(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for _, test := range []struct {
		name string
		f    unary
		lo   float64
		hi   float64
	}{
		{"Exp", math.Exp, -100, 100},
		{"Log", math.Log, 0, 100},
		{"Sin", math.Sin, -100, 100},
		{"Cos", math.Cos, -100, 100},
		{"Tan", math.Tan, -10, 10},
		{"Atan", math.Atan, -10, 10},
		{"Cosh", math.Cosh, -10, 10},
		{"Gamma", math.Gamma, -10, 10},
		{"Digamma", math.Digamma, -10, 10},
		{"Zeta", math.Zeta, -20, 20},
		{"Erfc", math.Erfc, -3, 10},
		{"J0", math.J0, -30, 30},
		{"Y1", math.Y1, 0, 30},
		{"Ai", math.Ai, -10, 10},
		{"Eint", math.Eint, -10, 10},
		{"Li2", math.Li2, -10, 10},
	} {
		for i := 0; i < 20; i++ {
			prec := uint(2 + rng.IntN(150))
			x := new(mpf.Float).SetPrec(prec).SetFloat64(test.lo + rng.Float64()*(test.hi-test.lo))
			d := test.f(new(mpf.Float).SetPrec(prec).SetMode(mpf.ToNegativeInf), x)
			u := test.f(new(mpf.Float).SetPrec(prec).SetMode(mpf.ToPositiveInf), x)
			if d.IsNaN() {
				assert.True(t, u.IsNaN())
				continue
			}
			if d.Acc() == mpf.Exact {
				assert.Equal(t, 0, d.Cmp(u), "%s(%s)", test.name, x.Text('g', -1))
				continue
			}
			assert.Equal(t, mpf.Below, d.Acc(), "%s(%s)", test.name, x.Text('g', -1))
			assert.Equal(t, mpf.Above, u.Acc(), "%s(%s)", test.name, x.Text('g', -1))
			assert.Equal(t, 0, d.NextAbove().Cmp(u), "%s(%s) at %d bits", test.name, x.Text('g', -1), prec)
		}
	}
}

func TestGRandom(t *testing.T) {
	src := rand.NewPCG(7, 8)
	z := new(mpf.Float).SetPrec(80)
	var sum, sum2 float64
	const n = 20000
	for i := 0; i < n; i++ {
		f := f64(math.GRandom(z, src))
		sum += f
		sum2 += f * f
	}
	mean := sum / n
	assert.InDelta(t, 0, mean, 0.05)
	assert.InDelta(t, 1, sum2/n-mean*mean, 0.05)
	assert.Equal(t, uint(mpf.DefaultPrec), math.GRandom(new(mpf.Float), src).Prec())

	sum = 0
	for i := 0; i < n; i++ {
		f := f64(math.ERandom(z, src))
		assert.False(t, z.Signbit())
		sum += f
	}
	assert.InDelta(t, 1, sum/n, 0.05)
}

func Benchmark_Exp(b *testing.B) {
	for _, prec := range []uint{53, 113, 500, 2000} {
		b.Run(strconv.Itoa(int(prec)), func(b *testing.B) {
			z := new(mpf.Float).SetPrec(prec)
			x := mpf.NewFloat(3.73)
			for i := 0; i < b.N; i++ {
				math.Exp(z, x)
			}
		})
	}
}

func Benchmark_Gamma(b *testing.B) {
	for _, prec := range []uint{53, 113, 500} {
		b.Run(strconv.Itoa(int(prec)), func(b *testing.B) {
			z := new(mpf.Float).SetPrec(prec)
			x := mpf.NewFloat(3.73)
			for i := 0; i < b.N; i++ {
				math.Gamma(z, x)
			}
		})
	}
}
