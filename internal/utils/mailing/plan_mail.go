package mailing

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"meal-planner/domain"
)

var planTemplate = template.Must(template.New("plan").Funcs(template.FuncMap{
	"kcal":  func(v float64) string { return fmt.Sprintf("%.0f kcal", v) },
	"grams": func(v float64) string { return fmt.Sprintf("%.1f g", v) },
	"title": func(s string) string {
		if s == "" {
			return s
		}
		return strings.ToUpper(s[:1]) + s[1:]
	},
}).Parse(`<html><body>
<p>Hi {{.Name}},</p>
<p>Here is your meal plan for <b>{{.Plan.Date}}</b>. Daily goal: {{kcal .Plan.Goals.Calories}}.</p>
{{range .Plan.Meals}}<h3>{{title .MealType}} ({{kcal .Totals.Calories}} of {{kcal .Target.Calories}})</h3>
{{if .Foods}}<ul>
{{range .Foods}}<li>{{.Name}} - {{kcal .Calories}}, protein {{grams .Protein}}, carbs {{grams .Carbohydrates}}, fat {{grams .Fat}}</li>
{{end}}</ul>
{{else}}<p>No suitable food found.</p>
{{end}}{{end}}<p>Total: {{kcal .Plan.Totals.Calories}}, protein {{grams .Plan.Totals.Protein}}, carbs {{grams .Plan.Totals.Carbohydrates}}, fat {{grams .Plan.Totals.Fat}}</p>
</body></html>`))

func BuildDailyPlanBody(name string, plan domain.DailyPlanResponse) (string, error) {
	var buf bytes.Buffer
	err := planTemplate.Execute(&buf, struct {
		Name string
		Plan domain.DailyPlanResponse
	}{Name: name, Plan: plan})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

type PlanMailer struct {
	mailer Mailer
}

func NewPlanMailer(mailer Mailer) *PlanMailer {
	return &PlanMailer{mailer: mailer}
}

func (p *PlanMailer) SendDailyPlan(toEmail, name string, plan domain.DailyPlanResponse) error {
	body, err := BuildDailyPlanBody(name, plan)
	if err != nil {
		return err
	}
	return p.mailer.SendMail(toEmail, "Your meal plan for "+plan.Date, body)
}
