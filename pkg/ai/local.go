package ai

import (
	"text/template"

	"github.com/narasux/chemreact/pkg/model"
	"github.com/narasux/chemreact/pkg/utils/funcs"
)

// AI 服务均不可用时使用的本地模板，内容完全由数据库字段生成

const localElementTmpl = `## {{ .Element.NameEs }} ({{ .Element.Symbol }})

{{ .Element.NameEs }} es un elemento químico clasificado como {{ lower .CategoryLabel }}.

**Propiedades básicas:**
- Número atómico: {{ .Element.AtomicNumber }}
- Masa atómica: {{ printf "%.4f" .Element.AtomicMass }} u
- Configuración electrónica: {{ default "No disponible" .Element.ElectronConfig }}
- Electrones de valencia: {{ .ValenceElectrons }}
{{- if ne .Level "basic" }}

**Ubicación en la tabla periódica:**
Se encuentra en el período {{ .Element.Period }}, grupo {{ .Element.Group }} y bloque {{ .Element.Block }}.

**Propiedades físicas:**
- Electronegatividad: {{ orNA "No disponible" .Element.Electronegativity }}
- Punto de fusión: {{ orNA "No disponible" .Element.MeltingPoint }} K
- Punto de ebullición: {{ orNA "No disponible" .Element.BoilingPoint }} K
{{- end }}
{{- if eq .Level "advanced" }}
- Energía de ionización: {{ orNA "No disponible" .Element.IonizationEnergy }} kJ/mol
- Estados de oxidación comunes: {{ default "No disponible" .Element.OxidationStates }}
{{- end }}
{{- with .Element.Description }}

{{ . }}
{{- end }}

Este elemento tiene {{ .Element.AtomicNumber }} protones en su núcleo y {{ .Element.AtomicNumber }} electrones en su forma neutra.`

const localReactionTmpl = `## {{ .Reaction.Name }}

Esta es una reacción de {{ lower .TypeLabel }}.
En ella, {{ joinWith " y " .Reactants }} reaccionan para formar {{ joinWith " y " .Products }}.
{{ if eq .Reaction.EnergyChange "exothermic" -}}
Esta reacción libera energía (exotérmica).
{{- else if eq .Reaction.EnergyChange "endothermic" -}}
Esta reacción absorbe energía (endotérmica).
{{- else -}}
Esta reacción no presenta un cambio de energía notable.
{{- end }}
{{- if ne .Level "basic" }}

El cambio de entalpía es de {{ orNA "un valor no especificado" .Reaction.EnthalpyChange }} kJ/mol.
{{- if .Reaction.RequiresCatalyst }}
Requiere {{ .Reaction.Catalyst }} como catalizador.
{{- end }}
{{- with .Reaction.TemperatureRange }}
Temperatura: {{ . }}.
{{- end }}
{{- end }}
{{- if eq .Level "advanced" }}
{{- with .Reaction.EducationalNotes }}

**Notas:** {{ . }}
{{- end }}
{{- with .Reaction.RealWorldExamples }}

**Aplicaciones:** {{ . }}
{{- end }}
{{- with .Reaction.SafetyWarnings }}

**Seguridad:** {{ . }}
{{- end }}
{{- end }}`

var (
	localElement  = template.Must(template.New("local_element").Funcs(funcs.NewFuncMap()).Parse(localElementTmpl))
	localReaction = template.Must(template.New("local_reaction").Funcs(funcs.NewFuncMap()).Parse(localReactionTmpl))
)

// LocalElementExplanation 本地模板生成的元素解释
func LocalElementExplanation(e *model.Element, level string) (string, error) {
	return render(localElement, newElementPromptData(e, level))
}

// LocalReactionExplanation 本地模板生成的反应解释
func LocalReactionExplanation(r *model.Reaction, level string) (string, error) {
	return render(localReaction, newReactionPromptData(r, level))
}
