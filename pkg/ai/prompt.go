package ai

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/pkg/errors"

	"github.com/narasux/chemreact/pkg/chem"
	"github.com/narasux/chemreact/pkg/model"
	"github.com/narasux/chemreact/pkg/utils/funcs"
)

var elementLevelInstructions = map[string]string{
	LevelBasic:        "Explica para un estudiante de secundaria. Usa lenguaje simple. Máximo 150 palabras.",
	LevelIntermediate: "Explica para un estudiante universitario. Incluye aplicaciones y propiedades importantes. Máximo 250 palabras.",
	LevelAdvanced: "Explica a nivel profesional. Incluye configuración electrónica detallada, " +
		"propiedades químicas avanzadas y aplicaciones industriales. Máximo 400 palabras.",
}

var reactionLevelInstructions = map[string]string{
	LevelBasic: `Explica esta reacción química para un estudiante de secundaria.
Usa lenguaje simple y ejemplos cotidianos. Evita términos técnicos complejos.
Máximo 300 palabras.

Incluye:
1. Qué sucede paso a paso en la reacción
2. Por qué ocurre esta reacción
3. Un ejemplo de la vida cotidiana donde se ve esto
4. Qué observaríamos si hiciéramos esta reacción`,
	LevelIntermediate: `Explica esta reacción química para un estudiante universitario de primer año.
Máximo 500 palabras.

Incluye:
1. Descripción del mecanismo de reacción
2. Tipos de enlaces que se rompen y se forman
3. Explicación energética (por qué es exotérmica o endotérmica)
4. Condiciones necesarias para que ocurra
5. Aplicaciones prácticas en la industria o laboratorio
6. Precauciones de seguridad relevantes`,
	LevelAdvanced: `Explica esta reacción química con rigor científico avanzado.
Máximo 800 palabras.

Incluye:
1. Mecanismo de reacción detallado paso a paso
2. Análisis termodinámico (ΔH, ΔG, ΔS)
3. Cinética de la reacción y energía de activación
4. Configuraciones electrónicas de reactivos y productos
5. Aplicaciones industriales y de investigación
6. Variantes y reacciones relacionadas`,
}

const elementPromptTmpl = `Eres un profesor de química experto. Explica el siguiente elemento químico en español:

Elemento: {{ .Element.NameEs }} ({{ .Element.Symbol }})
Número atómico: {{ .Element.AtomicNumber }}
Masa atómica: {{ printf "%.4f" .Element.AtomicMass }} u
Categoría: {{ .CategoryLabel }}
Configuración electrónica: {{ .Element.ElectronConfig }}
Electrones de valencia: {{ .ValenceElectrons }}
Electronegatividad: {{ orNA "N/A" .Element.Electronegativity }}
Período: {{ .Element.Period }}, Grupo: {{ .Element.Group }}
{{- with .Element.Description }}
Información adicional: {{ . }}
{{- end }}

{{ .Instruction }}

Incluye:
1. Propiedades físicas y químicas principales
2. Dónde se encuentra en la naturaleza
3. Usos y aplicaciones importantes
4. Datos curiosos o históricos

Usa formato Markdown con encabezados ##.
Responde SOLO con la explicación, sin introducción ni despedida.`

const reactionPromptTmpl = `Eres un profesor de química experto. Tu tarea es explicar la siguiente reacción química REAL.

REACCIÓN: {{ .Reaction.Name }}
ECUACIÓN: {{ .Reaction.Equation }}
TIPO: {{ .TypeLabel }}
REACTIVOS: {{ joinWith ", " .Reactants }}
PRODUCTOS: {{ joinWith ", " .Products }}
{{- if .Reaction.RequiresCatalyst }}
CATALIZADOR: {{ .Reaction.Catalyst }}
{{- end }}
CAMBIO DE ENTALPÍA: {{ orNA "No especificado" .Reaction.EnthalpyChange }} kJ/mol
CAMBIO DE ENERGÍA: {{ .EnergyLabel }}
{{- with .Reaction.EducationalNotes }}
NOTAS: {{ . }}
{{- end }}

INSTRUCCIONES:
{{ .Instruction }}

IMPORTANTE:
- Solo explica lo que REALMENTE ocurre en esta reacción
- No inventes información ni reacciones alternativas
- Sé preciso y educativo
- Usa formato Markdown
- Responde en español`

var (
	elementPrompt  = template.Must(template.New("element_prompt").Funcs(funcs.NewFuncMap()).Parse(elementPromptTmpl))
	reactionPrompt = template.Must(template.New("reaction_prompt").Funcs(funcs.NewFuncMap()).Parse(reactionPromptTmpl))
)

type elementPromptData struct {
	Element          *model.Element
	Level            string
	CategoryLabel    string
	ValenceElectrons int
	Instruction      string
}

type reactionPromptData struct {
	Reaction    *model.Reaction
	Level       string
	TypeLabel   string
	EnergyLabel string
	Reactants   []string
	Products    []string
	Instruction string
}

func newElementPromptData(e *model.Element, level string) elementPromptData {
	return elementPromptData{
		Element:          e,
		Level:            level,
		CategoryLabel:    model.ElementCategories.Label(e.Category),
		ValenceElectrons: chem.ValenceElectrons(e.Block, e.Group),
		Instruction:      elementLevelInstructions[level],
	}
}

func newReactionPromptData(r *model.Reaction, level string) reactionPromptData {
	return reactionPromptData{
		Reaction:    r,
		Level:       level,
		TypeLabel:   model.ReactionTypes.Label(r.ReactionType),
		EnergyLabel: model.EnergyTypes.Label(r.EnergyChange),
		Reactants:   participantTerms(r.ParticipantsByRole(model.RoleReactant)),
		Products:    participantTerms(r.ParticipantsByRole(model.RoleProduct)),
		Instruction: reactionLevelInstructions[level],
	}
}

// 参与物质的书写形式，如 "2 H2"
func participantTerms(participants []model.ReactionParticipant) []string {
	terms := make([]string, 0, len(participants))
	for _, p := range participants {
		if p.Coefficient > 1 {
			terms = append(terms, fmt.Sprintf("%d %s", p.Coefficient, p.Formula))
			continue
		}
		terms = append(terms, p.Formula)
	}
	return terms
}

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.Wrapf(err, "render template %s", tmpl.Name())
	}
	return strings.TrimSpace(buf.String()), nil
}

// BuildElementPrompt 元素解释提示词
func BuildElementPrompt(e *model.Element, level string) (string, error) {
	return render(elementPrompt, newElementPromptData(e, level))
}

// BuildReactionPrompt 反应解释提示词
func BuildReactionPrompt(r *model.Reaction, level string) (string, error) {
	return render(reactionPrompt, newReactionPromptData(r, level))
}
