/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: templates.go
Description: HTML template for verification reports: a run summary, one card per grammar
and a table with every check.
*/

package reporting

// reportTemplate is the HTML template for a verification report
const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}} - {{.Report.RunID}}</title>
    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            min-height: 100vh;
            color: #333;
        }

        .container {
            max-width: 1400px;
            margin: 0 auto;
            padding: 20px;
        }

        .header, .stat-card, .checks {
            background: rgba(255, 255, 255, 0.95);
            border-radius: 15px;
            padding: 25px;
            margin-bottom: 30px;
            box-shadow: 0 8px 32px rgba(0, 0, 0, 0.1);
        }

        .header {
            text-align: center;
        }

        .header h1 {
            color: #4a5568;
            font-size: 2.5rem;
            margin-bottom: 10px;
        }

        .header p {
            color: #718096;
        }

        .status.passed { color: #38a169; }
        .status.failed { color: #e53e3e; }

        .stats-grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(250px, 1fr));
            gap: 20px;
        }

        .stat-card h3 {
            color: #4a5568;
            margin-bottom: 15px;
        }

        .stat-card .value {
            font-size: 1.1rem;
            font-family: monospace;
            color: #2d3748;
        }

        table {
            width: 100%;
            border-collapse: collapse;
        }

        th, td {
            padding: 8px 12px;
            text-align: left;
            border-bottom: 1px solid #e2e8f0;
        }

        tr.failed td {
            background: #fff5f5;
        }

        td.digest {
            font-family: monospace;
            font-size: 0.8rem;
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>{{.Title}}</h1>
            <p>Generated on {{.GeneratedAt.Format "January 2, 2006 at 3:04 PM"}} | Run: <span id="run-id">{{.Report.RunID}}</span> | Duration: {{.Report.Duration}}</p>
            <p class="status {{if .Report.Passed}}passed{{else}}failed{{end}}" id="status">
                {{.Report.Checks}} checks, {{.Report.Failures}} failures
            </p>
        </div>

        <div class="stats-grid">
            {{range .Grammars}}
            <div class="stat-card" data-grammar="{{.Name}}">
                <h3>{{.Name}} <small>({{.Rule}})</small></h3>
                <div class="value">{{range $i, $c := .Counts}}{{if $i}}, {{end}}{{$c}}{{end}}</div>
                <div class="label">{{.Checks}} checks, {{.Failures}} failures</div>
            </div>
            {{end}}
        </div>

        <div class="checks">
            <table id="checks">
                <thead>
                    <tr>
                        <th>Grammar</th>
                        <th>Size</th>
                        <th>Count</th>
                        <th>Expected</th>
                        <th>Listed</th>
                        <th>Digest</th>
                        <th>Result</th>
                    </tr>
                </thead>
                <tbody>
                    {{range .Report.Results}}
                    <tr class="{{if .Passed}}passed{{else}}failed{{end}}">
                        <td>{{.Grammar}}</td>
                        <td>{{.Size}}</td>
                        <td>{{.Count}}</td>
                        <td>{{.Expected}}</td>
                        <td>{{if .Listing}}{{.Listed}}{{else}}skipped{{end}}</td>
                        <td class="digest">{{.Digest}}</td>
                        <td>{{if .Passed}}ok{{else}}{{join .Failures "; "}}{{end}}</td>
                    </tr>
                    {{end}}
                </tbody>
            </table>
        </div>
    </div>
</body>
</html>
`
