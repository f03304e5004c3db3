package insight

const summaryPrompt = `You are a principal security analyst. Your task is to provide a concise security summary for a given cloud asset.

Analyze the provided asset data and generate a 2-3 sentence summary covering:
1. A brief description of the asset and its purpose.
2. An assessment of its current security posture based on its configuration, tags, and risk score.
3. Mention one key potential risk or misconfiguration if applicable.

Asset Data:
%s

Generate the summary.`

const suggestPrompt = `You are a security expert analyzing cloud asset metadata to identify potential security risks and suggest relationships to other assets.

Given the metadata of asset "%s":
%s

Suggest potential relationships (edges) to other assets that might indicate a security risk. For each suggestion include the ID of the related asset, the type of relationship (e.g., uses, connected_to, depends_on), a risk score between 0 and 1 indicating the severity, and a reason for suggesting the relationship.

Return the suggestions as JSON.`
