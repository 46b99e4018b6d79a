package questions

import "github.com/quizarena/tictactrivia-backend/internal/entity"

var catalog = map[string][]entity.Question{
	"historia": {
		{
			ID:            1,
			Question:      "Em que ano Pedro Álvares Cabral chegou ao Brasil?",
			Options:       []string{"1498", "1500", "1502", "1504"},
			CorrectAnswer: "1500",
			Period:        "Descobrimento (1500)",
		},
		{
			ID:            2,
			Question:      "Qual foi o primeiro nome dado ao Brasil pelos portugueses?",
			Options:       []string{"Terra de Vera Cruz", "Terra de Santa Cruz", "Ilha de Vera Cruz", "Brasil"},
			CorrectAnswer: "Ilha de Vera Cruz",
			Period:        "Descobrimento (1500)",
		},
		{
			ID:            3,
			Question:      "Quem foi o escrivão da frota de Cabral que escreveu a famosa carta?",
			Options:       []string{"Vasco da Gama", "Pero Vaz de Caminha", "Bartolomeu Dias", "Tomé de Sousa"},
			CorrectAnswer: "Pero Vaz de Caminha",
			Period:        "Descobrimento (1500)",
		},
		{
			ID:            4,
			Question:      "O que eram as Capitanias Hereditárias?",
			Options:       []string{"Sistema de governo local", "Divisões territoriais doadas a nobres portugueses", "Fortalezas militares", "Grupos de bandeirantes"},
			CorrectAnswer: "Divisões territoriais doadas a nobres portugueses",
			Period:        "Período Colonial (1534)",
		},
		{
			ID:            5,
			Question:      "Quem foi o primeiro governador-geral do Brasil?",
			Options:       []string{"Tomé de Sousa", "Duarte da Costa", "Mem de Sá", "Martim Afonso"},
			CorrectAnswer: "Tomé de Sousa",
			Period:        "Período Colonial (1549)",
		},
		{
			ID:            6,
			Question:      "Em que ano foi proclamada a Independência do Brasil?",
			Options:       []string{"1820", "1822", "1824", "1889"},
			CorrectAnswer: "1822",
			Period:        "Independência (1822)",
		},
		{
			ID:            7,
			Question:      "Quem proclamou a Independência do Brasil?",
			Options:       []string{"Dom João VI", "Dom Pedro I", "Dom Pedro II", "Marechal Deodoro"},
			CorrectAnswer: "Dom Pedro I",
			Period:        "Independência (1822)",
		},
		{
			ID:            8,
			Question:      "Em que ano foi assinada a Lei Áurea?",
			Options:       []string{"1871", "1885", "1888", "1889"},
			CorrectAnswer: "1888",
			Period:        "Império (1888)",
		},
		{
			ID:            9,
			Question:      "Quem proclamou a República no Brasil?",
			Options:       []string{"Marechal Deodoro da Fonseca", "Floriano Peixoto", "Prudente de Morais", "Getúlio Vargas"},
			CorrectAnswer: "Marechal Deodoro da Fonseca",
			Period:        "República (1889)",
		},
		{
			ID:            10,
			Question:      "Em que ano Brasília foi inaugurada como capital do Brasil?",
			Options:       []string{"1956", "1958", "1960", "1964"},
			CorrectAnswer: "1960",
			Period:        "República (1960)",
		},
	},
	"quimica": {
		{
			ID:            1,
			Question:      "Qual é o símbolo químico do oxigênio?",
			Options:       []string{"O", "Ox", "O2", "Oy"},
			CorrectAnswer: "O",
			Period:        "Elementos Químicos",
		},
		{
			ID:            2,
			Question:      "Quantos prótons tem um átomo de carbono?",
			Options:       []string{"4", "6", "8", "12"},
			CorrectAnswer: "6",
			Period:        "Estrutura Atômica",
		},
		{
			ID:            3,
			Question:      "Qual é a fórmula química da água?",
			Options:       []string{"H2O", "HO2", "H2O2", "HO"},
			CorrectAnswer: "H2O",
			Period:        "Compostos Químicos",
		},
		{
			ID:            4,
			Question:      "Na tabela periódica, qual elemento tem símbolo Na?",
			Options:       []string{"Nitrogênio", "Sódio", "Níquel", "Neônio"},
			CorrectAnswer: "Sódio",
			Period:        "Tabela Periódica",
		},
		{
			ID:            5,
			Question:      "Qual é o pH de uma solução neutra?",
			Options:       []string{"0", "7", "14", "1"},
			CorrectAnswer: "7",
			Period:        "Ácidos e Bases",
		},
		{
			ID:            6,
			Question:      "Qual gás é liberado na fotossíntese?",
			Options:       []string{"CO2", "H2", "N2", "O2"},
			CorrectAnswer: "O2",
			Period:        "Química Orgânica",
		},
		{
			ID:            7,
			Question:      "Qual é a fórmula do gás carbônico?",
			Options:       []string{"CO", "CO2", "C2O", "CO3"},
			CorrectAnswer: "CO2",
			Period:        "Compostos Químicos",
		},
		{
			ID:            8,
			Question:      "Quantos elétrons tem um átomo neutro de hélio?",
			Options:       []string{"1", "2", "3", "4"},
			CorrectAnswer: "2",
			Period:        "Estrutura Atômica",
		},
	},
	"matematica": {
		{
			ID:            1,
			Question:      "Quanto é 7 × 8?",
			Options:       []string{"54", "56", "64", "58"},
			CorrectAnswer: "56",
			Period:        "Aritmética",
		},
		{
			ID:            2,
			Question:      "Qual é a raiz quadrada de 144?",
			Options:       []string{"10", "11", "12", "14"},
			CorrectAnswer: "12",
			Period:        "Aritmética",
		},
		{
			ID:            3,
			Question:      "Quantos graus tem a soma dos ângulos internos de um triângulo?",
			Options:       []string{"90", "180", "270", "360"},
			CorrectAnswer: "180",
			Period:        "Geometria",
		},
		{
			ID:            4,
			Question:      "Qual é o valor de x na equação 2x + 6 = 14?",
			Options:       []string{"2", "3", "4", "5"},
			CorrectAnswer: "4",
			Period:        "Álgebra",
		},
		{
			ID:            5,
			Question:      "Quanto é 15% de 200?",
			Options:       []string{"15", "20", "30", "35"},
			CorrectAnswer: "30",
			Period:        "Porcentagem",
		},
		{
			ID:            6,
			Question:      "Qual é o próximo número primo depois de 7?",
			Options:       []string{"8", "9", "10", "11"},
			CorrectAnswer: "11",
			Period:        "Aritmética",
		},
	},
}
