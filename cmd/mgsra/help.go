// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(countFilesGuide)
	app.Add(projectsGuide)
	app.Add(sampleFilesGuide)
	app.Add(taxonomyFilesGuide)
}

var projectsGuide = &command.Command{
	Usage: "projects",
	Short: "about project files",
	Long: `
Mgsra requires several files to read the taxonomy, the read counts, and the
metadata of the sequencing studies. To reduce the burden of keeping track of
many files, a single project file is used to hold the reference of all files
required in the analysis. This guide explains the structure of the file, but
most of the time, the best way to edit this file is by using the command
'mgsra add'.

A project file is a tab-delimited file with the following fields:

	- dataset  for the kind of file
	- path     for the path of the file

Here is an example file:

	# mgsra project files
	dataset	path
	taxonomy	taxonomy.json
	counts	counts.tab
	bioprojects	bioprojects.json
	samples	samples.json

The valid file types are:

- Taxonomy. Defined by the dataset keyword "taxonomy". This file contains the
  taxonomic tree as a JSON nested list. Alternatively, the keyword "taxnodes"
  can be used to define the taxonomy as a tab-delimited file of taxa and its
  parents. Only one of them can be defined. See
  'mgsra help taxonomy-files'.
- Read counts. Defined by the dataset keyword "counts". This file contains the
  number of reads assigned to each taxon in each sample. See
  'mgsra help count-files'.
- Bioprojects. Defined by the dataset keyword "bioprojects". This file
  contains the samples of each sequencing study. See
  'mgsra help sample-files'.
- Sample metadata. Defined by the dataset keyword "samples". This file
  contains the location, date, and sequencing attributes of each sample. See
  'mgsra help sample-files'.
	`,
}

var taxonomyFilesGuide = &command.Command{
	Usage: "taxonomy-files",
	Short: "about taxonomy files",
	Long: `
In mgsra, a taxonomy is a tree of taxon IDs (for example NCBI taxonomy IDs).
It can be stored in two different formats.

In the first format, the taxonomy is a JSON nested list, in which each node is
a list with the taxon ID as its first element, followed by the lists of its
children. Here is an example file:

	[10239, [11308, [11320], [11520]], [2697049]]

In the second format, the taxonomy is stored as a tab-delimited file with the
following columns:

	- taxid   the ID of the taxon
	- parent  the ID of the parent taxon. The root taxon uses 0 or its own ID.

Here is an example file:

	taxid	parent
	10239	10239
	11308	10239
	11320	11308
	11520	11308
	2697049	10239

In a mgsra project, the file with a nested list is indicated with the
"taxonomy" keyword, and the tab-delimited file with the "taxnodes" keyword.
	`,
}

var countFilesGuide = &command.Command{
	Usage: "count-files",
	Short: "about read count files",
	Long: `
A read count file is a tab-delimited file with the number of reads assigned to
a taxon in a sample, with the following columns:

	- taxid   the ID of the taxon assigned to the reads
	- sample  the identifier of the sample
	- reads   the number of reads

Here is an example file:

	# taxon read counts
	taxid	sample	reads
	10239	SRR14530724	18
	11320	SRR14530724	3
	11320	SRR14530726	1

Reads are only recorded at the taxon assigned to them. The reads of a taxon
are the reads assigned to the taxon and any of its descendants.

In a mgsra project, the file that contains the read counts is indicated with
the "counts" keyword.
	`,
}

var sampleFilesGuide = &command.Command{
	Usage: "sample-files",
	Short: "about bioproject and sample files",
	Long: `
Sequencing studies are stored in two JSON files.

The bioprojects file is a JSON object with the samples of each bioproject:

	{
		"PRJNA729801": ["SRR14530724", "SRR14530726"],
		"PRJNA812772": ["SRR18341092"]
	}

The samples file is a JSON object with the metadata of each sample:

	{
		"SRR14530724": {
			"country": "United States",
			"state": "California",
			"county": "Los Angeles County",
			"location": "HTP",
			"date": "2020-08-12",
			"reads": 12000000,
			"enrichment": "viral",
			"nuclease": false,
			"edta": false
		}
	}

The valid enrichment methods are "viral" and "panel". Unknown fields are
ignored. Samples with malformed metadata are reported and ignored. Samples
treated with EDTA are never used.

In a mgsra project, the bioprojects file is indicated with the "bioprojects"
keyword, and the samples file with the "samples" keyword.
	`,
}
