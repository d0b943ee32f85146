package curriculum

// Physics11Title is the header line of the grade 11 physics outline.
const Physics11Title = "11 klasės fizikos kurso programa"

// physics11 is the built-in grade 11 physics course outline, following
// the national secondary-school programme.
var physics11 = Curriculum{
	Subject: "Fizika",
	Grade:   11,
	Title:   Physics11Title,
	Units: []Unit{
		{
			Name: "Kinematika",
			Topics: []string{
				"Tolyginis tiesiaeigis judėjimas",
				"Tolygiai kintamas judėjimas",
				"Laisvasis kritimas",
				"Kreivaeigis judėjimas",
			},
			Objectives: []string{
				"Apibūdinti kūno judėjimą naudojant poslinkio, greičio ir pagreičio sąvokas",
				"Taikyti kinematikos lygtis judėjimo uždaviniams spręsti",
				"Braižyti ir interpretuoti judėjimo grafikus",
			},
		},
		{
			Name: "Dinamika",
			Topics: []string{
				"Niutono dėsniai",
				"Visuotinės traukos dėsnis",
				"Trinties jėga",
				"Tamprumo jėga",
			},
			Objectives: []string{
				"Taikyti Niutono dėsnius jėgų uždaviniams spręsti",
				"Paaiškinti kūnų sąveiką jėgų sąvokomis",
				"Apskaičiuoti gravitacijos jėgą tarp kūnų",
			},
		},
		{
			Name: "Tvermės dėsniai",
			Topics: []string{
				"Impulsas ir jo tvermė",
				"Mechaninis darbas ir galia",
				"Kinetinė ir potencinė energija",
				"Energijos tvermės dėsnis",
			},
			Objectives: []string{
				"Taikyti impulso tvermės dėsnį smūgių uždaviniams",
				"Skaičiuoti mechaninį darbą, galią ir energiją",
				"Paaiškinti energijos virsmus mechaninėse sistemose",
			},
		},
		{
			Name: "Svyravimai ir bangos",
			Topics: []string{
				"Harmoniniai svyravimai",
				"Matematinė svyruoklė",
				"Mechaninės bangos",
				"Garsas",
			},
			Objectives: []string{
				"Apibūdinti svyravimus amplitudės, periodo ir dažnio sąvokomis",
				"Apskaičiuoti svyruoklės periodą",
				"Paaiškinti bangų sklidimą ir garso savybes",
			},
		},
	},
	KeyFormulas: []string{
		"v = v0 + at",
		"s = v0*t + at²/2",
		"F = ma",
		"F = G*m1*m2/r²",
		"p = mv",
		"A = F*s*cos(α)",
		"Ek = mv²/2",
		"Ep = mgh",
		"T = 2π√(l/g)",
		"v = λf",
	},
	PracticalWorks: []string{
		"Tolygiai kintamo judėjimo tyrimas",
		"Trinties koeficiento nustatymas",
		"Energijos tvermės dėsnio tikrinimas",
		"Matematinės svyruoklės periodo matavimas",
	},
}

// DefaultTable returns the built-in curriculum table.
func DefaultTable() Table {
	return Table{
		{Subject: physics11.Subject, Grade: physics11.Grade}: physics11,
	}
}
