package render

// newsletterHTML is the email body template. All styling is inline, the
// document is self-contained and renders without any external assets.
const newsletterHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Real Estate Update</title>
</head>
<body style="margin:0;padding:0;background-color:#f4f4f4;font-family:Arial,Helvetica,sans-serif;color:#333333;">
<table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="background-color:#f4f4f4;">
<tr><td align="center" style="padding:20px 10px;">
<table role="presentation" width="600" cellpadding="0" cellspacing="0" style="background-color:#ffffff;border-radius:6px;overflow:hidden;">

<tr><td style="background-color:{{.BrandColor}};padding:24px 30px;">
{{- if .LogoURL}}
<img src="{{.LogoURL}}" alt="{{.Brokerage}}" height="40" style="display:block;margin-bottom:12px;">
{{- end}}
<h1 style="margin:0;font-size:22px;line-height:28px;color:#ffffff;">Your Real Estate Update</h1>
<p style="margin:6px 0 0;font-size:14px;color:#ffffff;">{{.DateLabel}}</p>
</td></tr>

<tr><td style="padding:20px 30px;border-bottom:1px solid #e5e5e5;">
<table role="presentation" cellpadding="0" cellspacing="0"><tr>
{{- if .HeadshotURL}}
<td style="padding-right:16px;"><img src="{{.HeadshotURL}}" alt="{{.Name}}" width="64" height="64" style="display:block;border-radius:50%;"></td>
{{- end}}
<td>
<p style="margin:0;font-size:16px;font-weight:bold;">{{.Name}}</p>
{{- if .Brokerage}}
<p style="margin:2px 0 0;font-size:13px;color:#777777;">{{.Brokerage}}</p>
{{- end}}
</td>
</tr></table>
</td></tr>

{{- if .TopStories}}
<tr><td style="padding:24px 30px 8px;">
<h2 style="margin:0 0 16px;font-size:18px;color:{{.BrandColor}};border-bottom:2px solid {{.BrandColor}};padding-bottom:8px;">Top Stories</h2>
{{- range .TopStories}}
<table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="margin-bottom:20px;">
<tr><td>
<p style="margin:0 0 4px;font-size:11px;text-transform:uppercase;letter-spacing:1px;color:{{$.BrandColor}};font-weight:bold;">{{.Category}}</p>
<h3 style="margin:0 0 8px;font-size:16px;line-height:22px;"><a href="{{.URL}}" style="color:#222222;text-decoration:none;">{{.Headline}}</a></h3>
<p style="margin:0 0 6px;font-size:14px;line-height:20px;color:#555555;">{{.Summary}}</p>
<a href="{{.URL}}" style="font-size:13px;color:{{$.BrandColor}};text-decoration:underline;">Read more</a>
</td></tr>
</table>
{{- end}}
</td></tr>
{{- end}}

{{- if .QuickHits}}
<tr><td style="padding:8px 30px 24px;">
<h2 style="margin:0 0 12px;font-size:16px;color:{{.BrandColor}};">Quick Hits</h2>
{{- range .QuickHits}}
<p style="margin:0 0 10px;font-size:13px;line-height:18px;">
<span style="color:{{$.BrandColor}};font-weight:bold;">{{.Category}}:</span>
<a href="{{.URL}}" style="color:#333333;">{{.Headline}}</a>
</p>
{{- end}}
</td></tr>
{{- end}}

<tr><td style="background-color:#f8f8f8;padding:20px 30px;border-top:1px solid #e5e5e5;">
<p style="margin:0 0 6px;font-size:13px;color:#666666;">{{.Name}}{{if .Brokerage}} &middot; {{.Brokerage}}{{end}}</p>
{{- if .Phone}}
<p style="margin:0 0 6px;font-size:13px;color:#666666;">{{.Phone}}</p>
{{- end}}
<p style="margin:0 0 6px;font-size:13px;"><a href="mailto:{{.Email}}" style="color:{{.BrandColor}};">{{.Email}}</a></p>
<p style="margin:12px 0 0;font-size:11px;color:#999999;">You receive this newsletter from your real estate agent. {{"{{"}}unsubscribe{{"}}"}}</p>
</td></tr>

</table>
</td></tr>
</table>
</body>
</html>
`
